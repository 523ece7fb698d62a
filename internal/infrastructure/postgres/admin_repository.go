package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo almacén de credenciales en la tabla admins.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// FindByEmail busca sin distinguir mayúsculas.
func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM admins WHERE lower(email) = lower($1)`
	var a entity.Admin
	err := r.q.QueryRow(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// Upsert crea la cuenta o rota su hash conservando id y created_at.
func (r *AdminRepo) Upsert(ctx context.Context, a *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
			SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}
