package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/linkbi-api/internal/application/directory"
	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

const adminListCache = "private, max-age=60"

// AdminHandler rutas de moderación (protegidas).
type AdminHandler struct {
	uc  *directory.ModerationUseCase
	log *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *directory.ModerationUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Lister toutes les fiches (tous statuts)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AdminProviderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/prestataires [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	c.Set(fiber.HeaderCacheControl, adminListCache)
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Changer le statut de modération
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.UpdateStatusRequest  true  "statut"
// @Success      200   {object}  dto.StatusUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/prestataires/{id} [patch]
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
	}
	if err := validate.Struct(in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", msgInvalidState)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in.Statut)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", msgInvalidState)
		case errors.Is(err, domain.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgNotFound)
		default:
			return internalError(c, h.log, err)
		}
	}
	h.log.Info().
		Int64("id", id).
		Str("statut", out.Statut).
		Str("admin", GetAdminEmail(c)).
		Msg("statut modifié")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une fiche
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/prestataires/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgNotFound)
		}
		return internalError(c, h.log, err)
	}
	h.log.Info().Int64("id", id).Str("admin", GetAdminEmail(c)).Msg("fiche supprimée")
	return c.JSON(dto.SuccessResponse{Success: true})
}
