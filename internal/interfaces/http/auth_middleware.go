package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/linkbi-api/pkg/jwt"
)

// Locals keys para la cuenta autenticada en Fiber.
const (
	LocalAdminID = "admin_id"
	LocalEmail   = "admin_email"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae id, email y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authentification requise")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Format attendu : Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authentification requise")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Jeton invalide ou expiré")
		}
		c.Locals(LocalAdminID, claims.Subject)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole autoriza solo los roles indicados. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_ROLE", "Jeton sans rôle")
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "Accès refusé")
	}
}

// GetAdminID devuelve el id de la cuenta (después del middleware de auth).
func GetAdminID(c *fiber.Ctx) string { return localString(c, LocalAdminID) }

// GetAdminEmail devuelve el email de la cuenta autenticada.
func GetAdminEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
