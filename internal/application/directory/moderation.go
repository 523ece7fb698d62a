package directory

import (
	"context"
	"fmt"

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

// ModerationUseCase operaciones del área de administración.
type ModerationUseCase struct {
	repo    repository.ProviderRepository
	metrics Recorder
}

// NewModerationUseCase construye el caso de uso. metrics puede ser nil.
func NewModerationUseCase(repo repository.ProviderRepository, metrics Recorder) *ModerationUseCase {
	return &ModerationUseCase{repo: repo, metrics: recorderOrNop(metrics)}
}

// ListAll devuelve todos los registros, sin importar el estado, del más reciente al más antiguo.
func (uc *ModerationUseCase) ListAll(ctx context.Context) ([]dto.AdminProviderResponse, error) {
	list, err := uc.repo.FindMany(ctx, repository.ProviderQuery{Order: repository.OrderByCreatedDesc})
	if err != nil {
		return nil, fmt.Errorf("listar prestataires (admin): %w", err)
	}
	out := make([]dto.AdminProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toAdminResponse(p))
	}
	return out, nil
}

// UpdateStatus cambia solo el statut. Un valor fuera del enum devuelve
// domain.ErrInvalidStatus sin tocar el store; un id inexistente, domain.ErrNotFound.
func (uc *ModerationUseCase) UpdateStatus(ctx context.Context, id int64, raw string) (*dto.StatusUpdateResponse, error) {
	status, err := moderation.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	uc.metrics.StatusUpdated(status)
	return &dto.StatusUpdateResponse{
		ID:        p.ID,
		Nom:       p.Nom,
		Statut:    p.Statut.String(),
		UpdatedAt: p.UpdatedAt,
	}, nil
}

// Delete borrado físico; domain.ErrNotFound si el id no existe.
func (uc *ModerationUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.metrics.ProviderDeleted()
	return nil
}
