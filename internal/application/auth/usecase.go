package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
	"github.com/jhoicas/linkbi-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación del área de moderación.
type AuthUseCase struct {
	admins repository.AdminRepository
	jwtCfg JWTConfig
}

// hash de referencia para igualar el tiempo de respuesta cuando el email no existe
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("linkbi-dummy-password"), bcrypt.DefaultCost)

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(admins repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admins: admins, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el almacén de credenciales y genera un JWT.
// Email desconocido y password incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalizeEmail(in.Email)
	admin, err := uc.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("buscar admin: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if admin.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Email, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      dto.AdminUserResponse{Email: admin.Email, Role: admin.Role},
	}, nil
}

// EnsureAdmin crea o actualiza la cuenta admin con la contraseña hasheada con bcrypt.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || len(password) < 8 {
		return fmt.Errorf("%w: email obligatorio y password de al menos 8 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.admins.Upsert(ctx, &entity.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
