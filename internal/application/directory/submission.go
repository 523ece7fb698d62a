package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

// SubmissionUseCase inscripción pública de prestataires.
type SubmissionUseCase struct {
	repo    repository.ProviderRepository
	metrics Recorder
}

// NewSubmissionUseCase construye el caso de uso. metrics puede ser nil.
func NewSubmissionUseCase(repo repository.ProviderRepository, metrics Recorder) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo, metrics: recorderOrNop(metrics)}
}

// Submit valida, normaliza y persiste la inscripción en estado en_attente.
// Devuelve *domain.FieldError si falta un campo obligatorio.
func (uc *SubmissionUseCase) Submit(ctx context.Context, in dto.CreateProviderRequest) (*dto.ProviderRecordResponse, error) {
	provider, err := NewProviderFromSubmission(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, provider); err != nil {
		return nil, fmt.Errorf("crear prestataire: %w", err)
	}
	uc.metrics.SubmissionCreated()
	return toProviderRecord(provider), nil
}

// NewProviderFromSubmission aplica las reglas de inscripción:
// campos obligatorios verificados en orden fijo (el primero que falte gana),
// todo recortado, opcionales vacíos como nil y statut forzado al estado inicial.
func NewProviderFromSubmission(in dto.CreateProviderRequest) (*entity.Provider, error) {
	required := []struct {
		field string
		value string
	}{
		{"nom", in.Nom},
		{"domaine", in.Domaine},
		{"ville", in.Ville},
		{"description", in.Description},
		{"telephone", in.Telephone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.MissingField(r.field)
		}
	}

	return &entity.Provider{
		Nom:         strings.TrimSpace(in.Nom),
		Domaine:     strings.TrimSpace(in.Domaine),
		Ville:       strings.TrimSpace(in.Ville),
		Description: strings.TrimSpace(in.Description),
		Telephone:   strings.TrimSpace(in.Telephone),
		Email:       optional(in.Email),
		Prix:        optional(in.Prix),
		SiteWeb:     optional(in.SiteWeb),
		Linkedin:    optional(in.Linkedin),
		Twitter:     optional(in.Twitter),
		Instagram:   optional(in.Instagram),
		Facebook:    optional(in.Facebook),
		Photos:      cleanPhotos(in.Photos),
		Statut:      moderation.Initial,
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func cleanPhotos(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
