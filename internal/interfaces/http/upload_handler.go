package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/linkbi-api/internal/application/media"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

// UploadHandler recibe las fotos del formulario de inscripción.
type UploadHandler struct {
	uc  *media.UploadUseCase
	log *logger.Logger
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *media.UploadUseCase, log *logger.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// Upload godoc
// @Summary      Héberger une photo
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image (max 10MB)"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	in := media.UploadInput{}
	fh, err := c.FormFile("file")
	if err == nil {
		f, openErr := fh.Open()
		if openErr != nil {
			return internalError(c, h.log, openErr)
		}
		defer f.Close()
		in = media.UploadInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		}
	}
	out, err := h.uc.Upload(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE", media.UserMessage(err))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
