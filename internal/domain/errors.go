package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("ressource introuvable")
	ErrInvalidInput  = errors.New("entrée invalide")
	ErrInvalidStatus = errors.New("statut invalide")
	ErrDuplicate     = errors.New("ressource dupliquée")
	ErrUnauthorized  = errors.New("non autorisé")
	ErrForbidden     = errors.New("accès refusé")
)

// FieldError indica que un campo obligatorio falta o está en blanco.
// Envuelve ErrInvalidInput para que errors.Is siga funcionando.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Le champ %s est requis", e.Field)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// MissingField construye un FieldError para el campo dado.
func MissingField(field string) error {
	return &FieldError{Field: field}
}
