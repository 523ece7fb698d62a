package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo cuentas de administración indexadas por email en minúsculas.
type AdminRepo struct {
	mu   sync.RWMutex
	rows map[string]entity.Admin
}

// NewAdminRepository construye un almacén vacío.
func NewAdminRepository() *AdminRepo {
	return &AdminRepo{rows: make(map[string]entity.Admin)}
}

func (r *AdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.rows[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *AdminRepo) Upsert(_ context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(admin.Email)
	if existing, ok := r.rows[key]; ok {
		admin.ID = existing.ID
		admin.CreatedAt = existing.CreatedAt
	}
	r.rows[key] = *admin
	return nil
}
