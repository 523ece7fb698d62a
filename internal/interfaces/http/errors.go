package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

// Mensajes visibles para el usuario final.
const (
	msgInternal     = "Erreur interne du serveur"
	msgInvalidBody  = "Corps de requête invalide"
	msgInvalidID    = "Identifiant invalide"
	msgNotFound     = "Prestataire introuvable"
	msgInvalidState = "Statut invalide"
	msgTooLarge     = "Le fichier est trop volumineux (max 10MB)"
)

func writeError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

// internalError registra el detalle y responde con el mensaje genérico.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL", msgInternal)
}

// parseID lee :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ErrorHandler manejador de errores no capturados por los handlers (rutas inexistentes, cuerpo demasiado grande, panics recuperados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusRequestEntityTooLarge:
				return writeError(c, fe.Code, "TOO_LARGE", msgTooLarge)
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, "NOT_FOUND", fe.Message)
			}
			if fe.Code < fiber.StatusInternalServerError {
				return writeError(c, fe.Code, "", fe.Message)
			}
		}
		return internalError(c, log, err)
	}
}
