package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
)

// Provider representa un prestataire listado en el directorio.
// Los campos opcionales son punteros: nil significa ausente, nunca cadena vacía.
type Provider struct {
	ID          int64
	Nom         string
	Domaine     string
	Ville       string
	Description string
	Telephone   string
	Email       *string
	Prix        *string
	SiteWeb     *string
	Linkedin    *string
	Twitter     *string
	Instagram   *string
	Facebook    *string
	Photos      []string
	Note        *decimal.Decimal // solo para ordenar el listado público
	Statut      moderation.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublic indica si el registro puede mostrarse en el listado público.
func (p *Provider) IsPublic() bool {
	return moderation.IsPublic(p.Statut)
}

// Clone devuelve una copia profunda (slices y punteros incluidos).
func (p *Provider) Clone() *Provider {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Email = cloneString(p.Email)
	cp.Prix = cloneString(p.Prix)
	cp.SiteWeb = cloneString(p.SiteWeb)
	cp.Linkedin = cloneString(p.Linkedin)
	cp.Twitter = cloneString(p.Twitter)
	cp.Instagram = cloneString(p.Instagram)
	cp.Facebook = cloneString(p.Facebook)
	cp.Photos = append([]string(nil), p.Photos...)
	if p.Note != nil {
		n := *p.Note
		cp.Note = &n
	}
	return &cp
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
