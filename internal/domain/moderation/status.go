// Package moderation define el ciclo de vida de moderación de un prestataire.
//
// El grafo de transiciones es permisivo: un administrador puede mover un
// registro de cualquier estado válido a cualquier otro, incluido el mismo.
package moderation

import "github.com/jhoicas/linkbi-api/internal/domain"

// Status estado de moderación persistido en la columna statut.
type Status string

const (
	StatusPending  Status = "en_attente"
	StatusApproved Status = "valide"
	StatusRejected Status = "rejete"
)

// Initial es el estado asignado a todo registro en su creación.
const Initial = StatusPending

// All devuelve los estados válidos en orden de ciclo de vida.
func All() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected}
}

// Valid indica si s es uno de los tres estados enumerados.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus convierte la entrada del cliente sin normalizarla: "Valide" o " valide" son inválidos.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", domain.ErrInvalidStatus
	}
	return s, nil
}

// CanTransition informa si from puede pasar a to.
func CanTransition(from, to Status) bool {
	return from.Valid() && to.Valid()
}

// IsPublic indica si un registro con este estado es visible en el listado público.
func IsPublic(s Status) bool {
	return s == StatusApproved
}
