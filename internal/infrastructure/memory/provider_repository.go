// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORE_DRIVER=memory y en los tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo almacén en memoria. Los ids salen de un contador monotónico y nunca se reutilizan.
type ProviderRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*entity.Provider
	now    func() time.Time
}

// NewProviderRepository construye un almacén vacío.
func NewProviderRepository() *ProviderRepo {
	return &ProviderRepo{rows: make(map[int64]*entity.Provider), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (r *ProviderRepo) WithClock(now func() time.Time) *ProviderRepo {
	r.now = now
	return r
}

// Create asigna id y timestamps y guarda una copia.
func (r *ProviderRepo) Create(_ context.Context, p *entity.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := r.now().UTC()
	p.ID = r.nextID
	if p.Statut == "" {
		p.Statut = moderation.Initial
	}
	if p.Photos == nil {
		p.Photos = []string{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	r.rows[p.ID] = p.Clone()
	return nil
}

// FindMany filtra por estado y ordena igual que el adaptador PostgreSQL.
func (r *ProviderRepo) FindMany(_ context.Context, q repository.ProviderQuery) ([]*entity.Provider, error) {
	r.mu.RLock()
	out := make([]*entity.Provider, 0, len(r.rows))
	for _, p := range r.rows {
		if q.Status != nil && p.Statut != *q.Status {
			continue
		}
		out = append(out, p.Clone())
	}
	r.mu.RUnlock()

	switch q.Order {
	case repository.OrderByCreatedDesc:
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID > out[j].ID
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Note, out[j].Note
			switch {
			case a == nil && b == nil:
				return out[i].ID < out[j].ID
			case a == nil:
				return false
			case b == nil:
				return true
			case !a.Equal(*b):
				return a.GreaterThan(*b)
			}
			return out[i].ID < out[j].ID
		})
	}
	return out, nil
}

// FindByID devuelve una copia del registro.
func (r *ProviderRepo) FindByID(_ context.Context, id int64) (*entity.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

// UpdateStatus last-write-wins sobre el registro.
func (r *ProviderRepo) UpdateStatus(_ context.Context, id int64, status moderation.Status) (*entity.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Statut = status
	p.UpdatedAt = r.now().UTC()
	return p.Clone(), nil
}

// Delete borrado físico.
func (r *ProviderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}
