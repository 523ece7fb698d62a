package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jhoicas/linkbi-api/internal/application/ports"
)

var _ ports.MediaStorage = (*LocalStore)(nil)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// LocalStore guarda las imágenes en disco; el servidor HTTP las sirve bajo publicBaseURL.
type LocalStore struct {
	dir           string
	publicBaseURL string
}

// NewLocalStore crea el directorio si no existe.
func NewLocalStore(dir, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// Dir directorio raíz (para montar el handler estático).
func (s *LocalStore) Dir() string { return s.dir }

// Put escribe a un archivo temporal y lo renombra para no servir archivos a medio escribir.
func (s *LocalStore) Put(ctx context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := unsafeKeyChars.ReplaceAllString(filepath.Base(key), "")
	if name == "" || name == "." {
		return "", fmt.Errorf("clave de objeto inválida: %q", key)
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("mover archivo: %w", err)
	}
	return s.publicBaseURL + "/" + name, nil
}
