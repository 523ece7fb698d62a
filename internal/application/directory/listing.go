package directory

import (
	"context"
	"fmt"

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

// ListingUseCase lectura pública: solo registros valide.
type ListingUseCase struct {
	repo repository.ProviderRepository
}

// NewListingUseCase construye el caso de uso.
func NewListingUseCase(repo repository.ProviderRepository) *ListingUseCase {
	return &ListingUseCase{repo: repo}
}

// List devuelve los prestataires aprobados por nota descendente (sin nota al final).
// Con filtro vacío se devuelve el conjunto completo.
func (uc *ListingUseCase) List(ctx context.Context, filter dto.ProviderFilter) ([]dto.ProviderResponse, error) {
	approved := moderation.StatusApproved
	list, err := uc.repo.FindMany(ctx, repository.ProviderQuery{
		Status: &approved,
		Order:  repository.OrderByNoteDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("listar prestataires: %w", err)
	}
	m := newMatcher(filter)
	out := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		// el store ya filtra por statut; se verifica de nuevo para no depender del adaptador
		if !p.IsPublic() {
			continue
		}
		if !m.empty() && !m.match(p) {
			continue
		}
		out = append(out, toProviderResponse(p))
	}
	return out, nil
}

// GetByID ficha pública. Un registro no aprobado se trata como inexistente.
func (uc *ListingUseCase) GetByID(ctx context.Context, id int64) (*dto.ProviderDetailResponse, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPublic() {
		return nil, domain.ErrNotFound
	}
	return toProviderDetail(p), nil
}
