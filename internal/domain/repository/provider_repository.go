package repository

import (
	"context"

	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
)

// OrderBy criterio de orden soportado por FindMany.
type OrderBy int

const (
	// OrderByNoteDesc nota descendente, registros sin nota al final, desempate por id ascendente.
	OrderByNoteDesc OrderBy = iota
	// OrderByCreatedDesc fecha de creación descendente, desempate por id descendente.
	OrderByCreatedDesc
)

// ProviderQuery filtro y orden para FindMany. Status nil = todos los estados.
type ProviderQuery struct {
	Status *moderation.Status
	Order  OrderBy
}

// ProviderRepository define el puerto de persistencia para Provider.
// FindByID, UpdateStatus y Delete devuelven domain.ErrNotFound si el id no existe.
type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	FindMany(ctx context.Context, q ProviderQuery) ([]*entity.Provider, error)
	FindByID(ctx context.Context, id int64) (*entity.Provider, error)
	UpdateStatus(ctx context.Context, id int64, status moderation.Status) (*entity.Provider, error)
	Delete(ctx context.Context, id int64) error
}
