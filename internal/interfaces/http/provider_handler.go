package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/linkbi-api/internal/application/directory"
	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

// Caché del listado público: navegador y CDN 5 min, stale 10 min.
const (
	publicListCache    = "public, max-age=300, s-maxage=300, stale-while-revalidate=600"
	publicListCDNCache = "max-age=300"
)

// ProviderHandler rutas públicas del annuaire.
type ProviderHandler struct {
	listing    *directory.ListingUseCase
	submission *directory.SubmissionUseCase
	log        *logger.Logger
}

// NewProviderHandler construye el handler.
func NewProviderHandler(listing *directory.ListingUseCase, submission *directory.SubmissionUseCase, log *logger.Logger) *ProviderHandler {
	return &ProviderHandler{listing: listing, submission: submission, log: log}
}

// List godoc
// @Summary      Lister les prestataires validés
// @Tags         prestataires
// @Produce      json
// @Param        ville    query  string  false  "Ville (sans accents ni casse)"
// @Param        domaine  query  string  false  "Domaine"
// @Success      200  {array}   dto.ProviderResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/prestataires [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	var filter dto.ProviderFilter
	if err := c.QueryParser(&filter); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "Paramètres de recherche invalides")
	}
	out, err := h.listing.List(c.UserContext(), filter)
	if err != nil {
		return internalError(c, h.log, err)
	}
	c.Set(fiber.HeaderCacheControl, publicListCache)
	c.Set("CDN-Cache-Control", publicListCDNCache)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Fiche publique d'un prestataire
// @Tags         prestataires
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.ProviderDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prestataires/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
	}
	out, err := h.listing.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgNotFound)
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Inscription d'un prestataire (en attente de modération)
// @Tags         prestataires
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProviderRequest  true  "Fiche prestataire"
// @Success      201   {object}  dto.ProviderRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/prestataires [post]
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
	}
	out, err := h.submission.Submit(c.UserContext(), in)
	if err != nil {
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELD", fe.Error())
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
