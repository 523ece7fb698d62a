package repository

import (
	"context"

	"github.com/jhoicas/linkbi-api/internal/domain/entity"
)

// AdminRepository almacén de credenciales del área de moderación.
type AdminRepository interface {
	// FindByEmail devuelve domain.ErrNotFound si no existe la cuenta.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// Upsert crea la cuenta o actualiza su hash y rol si el email ya existe.
	Upsert(ctx context.Context, admin *entity.Admin) error
}
