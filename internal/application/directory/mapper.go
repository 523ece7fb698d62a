package directory

import (
	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain/contact"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
)

func toProviderResponse(p *entity.Provider) dto.ProviderResponse {
	var note *float64
	if p.Note != nil {
		f := p.Note.InexactFloat64()
		note = &f
	}
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return dto.ProviderResponse{
		ID:          p.ID,
		Nom:         p.Nom,
		Domaine:     p.Domaine,
		Ville:       p.Ville,
		Description: p.Description,
		Note:        note,
		Prix:        p.Prix,
		Telephone:   p.Telephone,
		Email:       p.Email,
		Photos:      photos,
		SiteWeb:     p.SiteWeb,
		Linkedin:    p.Linkedin,
		Twitter:     p.Twitter,
		Instagram:   p.Instagram,
		Facebook:    p.Facebook,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProviderRecord(p *entity.Provider) *dto.ProviderRecordResponse {
	return &dto.ProviderRecordResponse{
		ProviderResponse: toProviderResponse(p),
		Statut:           p.Statut.String(),
	}
}

func toProviderDetail(p *entity.Provider) *dto.ProviderDetailResponse {
	return &dto.ProviderDetailResponse{
		ProviderResponse: toProviderResponse(p),
		WhatsAppURL:      contact.WhatsAppURL(p.Telephone, p.Nom, p.Domaine),
	}
}

func toAdminResponse(p *entity.Provider) dto.AdminProviderResponse {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return dto.AdminProviderResponse{
		ID:          p.ID,
		Nom:         p.Nom,
		Domaine:     p.Domaine,
		Ville:       p.Ville,
		Description: p.Description,
		Telephone:   p.Telephone,
		Email:       p.Email,
		Photos:      photos,
		Statut:      p.Statut.String(),
		CreatedAt:   p.CreatedAt,
	}
}
