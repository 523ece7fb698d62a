package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // registra el decoder webp en image

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/application/ports"
	"github.com/jhoicas/linkbi-api/internal/domain"
)

// MaxUploadBytes tamaño máximo aceptado por foto (10 MB).
const MaxUploadBytes int64 = 10 * 1024 * 1024

// MaxUploadPixels límite de ancho×alto (40 megapíxeles). Se comprueba sobre la cabecera,
// sin decodificar el bitmap.
const MaxUploadPixels = 40_000_000

// Errores de validación; el mensaje se muestra tal cual al usuario.
var (
	ErrNoFile   = fmt.Errorf("%w: Aucun fichier fourni", domain.ErrInvalidInput)
	ErrNotImage = fmt.Errorf("%w: Le fichier doit être une image", domain.ErrInvalidInput)
	ErrTooLarge = fmt.Errorf("%w: Le fichier est trop volumineux (max 10MB)", domain.ErrInvalidInput)
	ErrTooWide  = fmt.Errorf("%w: Les dimensions de l'image sont trop grandes (max 40 mégapixels)", domain.ErrInvalidInput)
)

// UserMessage extrae el mensaje visible de un error de validación de subida.
func UserMessage(err error) string {
	for _, e := range []error{ErrNoFile, ErrNotImage, ErrTooLarge, ErrTooWide} {
		if errors.Is(err, e) {
			return strings.TrimPrefix(e.Error(), domain.ErrInvalidInput.Error()+": ")
		}
	}
	return ""
}

// UploadInput archivo recibido del formulario multipart.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Recorder cuenta subidas por resultado (ok, rejected, error).
type Recorder interface {
	Upload(result string)
}

// UploadUseCase valida la imagen antes de reenviarla al servicio de alojamiento.
type UploadUseCase struct {
	storage ports.MediaStorage
	metrics Recorder
	now     func() time.Time
}

// NewUploadUseCase construye el caso de uso. metrics puede ser nil.
func NewUploadUseCase(storage ports.MediaStorage, metrics Recorder) *UploadUseCase {
	return &UploadUseCase{storage: storage, metrics: metrics, now: time.Now}
}

// Upload aplica las reglas de tipo MIME y tamaño, lee las dimensiones y guarda el objeto.
func (uc *UploadUseCase) Upload(ctx context.Context, in UploadInput) (*dto.UploadResponse, error) {
	out, err := uc.upload(ctx, in)
	uc.record(err)
	return out, err
}

func (uc *UploadUseCase) upload(ctx context.Context, in UploadInput) (*dto.UploadResponse, error) {
	if in.Body == nil {
		return nil, ErrNoFile
	}
	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}
	if in.Size > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	// el tamaño declarado puede mentir: se lee como máximo un byte más del límite
	data, err := io.ReadAll(io.LimitReader(in.Body, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if int64(len(data)) > MaxUploadBytes {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	format := formatFromContentType(contentType)
	width, height, err := headerDimensions(data, format)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	publicID := fmt.Sprintf("prestataire_%d_%s", now.UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	key := publicID + "." + format

	url, err := uc.storage.Put(ctx, key, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("alojar imagen: %w", err)
	}
	return &dto.UploadResponse{
		SecureURL: url,
		PublicID:  publicID,
		Format:    format,
		Width:     width,
		Height:    height,
		Bytes:     int64(len(data)),
		CreatedAt: now,
	}, nil
}

func (uc *UploadUseCase) record(err error) {
	if uc.metrics == nil {
		return
	}
	switch {
	case err == nil:
		uc.metrics.Upload("ok")
	case errors.Is(err, domain.ErrInvalidInput):
		uc.metrics.Upload("rejected")
	default:
		uc.metrics.Upload("error")
	}
}

// headerDimensions lee ancho y alto de la cabecera. Los formatos sin decoder registrado
// (heic, avif, svg...) se aceptan con 0×0; en uno decodificable, bytes ilegibles son ErrNotImage.
func headerDimensions(data []byte, format string) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) && !decodable(format) {
			return 0, 0, nil
		}
		return 0, 0, ErrNotImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, ErrNotImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxUploadPixels {
		return 0, 0, ErrTooWide
	}
	return cfg.Width, cfg.Height, nil
}

// decodable indica si hay decoder registrado para el subtipo declarado.
func decodable(format string) bool {
	if format == "webp" {
		return true
	}
	_, err := imaging.FormatFromExtension(format)
	return err == nil
}

// formatFromContentType "image/svg+xml" -> "svg", "image/jpeg" -> "jpeg".
func formatFromContentType(ct string) string {
	sub := strings.TrimPrefix(ct, "image/")
	if i := strings.IndexAny(sub, "+;"); i >= 0 {
		sub = sub[:i]
	}
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return "bin"
	}
	return sub
}
