package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/linkbi-api/internal/application/auth"
	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

// AuthHandler login del área de moderación.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Connexion administrateur
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", "Email et mot de passe requis")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
			h.log.Warn().Str("ip", c.IP()).Msg("intento de login fallido")
			return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Identifiants incorrects")
		default:
			return internalError(c, h.log, err)
		}
	}
	return c.JSON(out)
}
