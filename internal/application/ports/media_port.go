package ports

import (
	"context"
	"io"
)

// MediaStorage contrato del servicio de alojamiento de imágenes.
// Put devuelve la URL pública del objeto guardado bajo key.
type MediaStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
