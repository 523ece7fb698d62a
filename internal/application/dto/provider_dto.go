package dto

import "time"

// CreateProviderRequest entrada pública de inscripción. No incluye id, statut ni note:
// si el cliente los envía se ignoran al decodificar.
type CreateProviderRequest struct {
	Nom         string   `json:"nom"`
	Domaine     string   `json:"domaine"`
	Ville       string   `json:"ville"`
	Description string   `json:"description"`
	Telephone   string   `json:"telephone"`
	Email       string   `json:"email"`
	Prix        string   `json:"prix"`
	Photos      []string `json:"photos"`
	SiteWeb     string   `json:"siteWeb"`
	Linkedin    string   `json:"linkedin"`
	Twitter     string   `json:"twitter"`
	Instagram   string   `json:"instagram"`
	Facebook    string   `json:"facebook"`
}

// ProviderFilter filtros opcionales del listado público (formulario de búsqueda).
type ProviderFilter struct {
	Ville   string `query:"ville"`
	Domaine string `query:"domaine"`
}

// ProviderResponse proyección pública de un prestataire.
type ProviderResponse struct {
	ID          int64     `json:"id"`
	Nom         string    `json:"nom"`
	Domaine     string    `json:"domaine"`
	Ville       string    `json:"ville"`
	Description string    `json:"description"`
	Note        *float64  `json:"note"`
	Prix        *string   `json:"prix"`
	Telephone   string    `json:"telephone"`
	Email       *string   `json:"email"`
	Photos      []string  `json:"photos"`
	SiteWeb     *string   `json:"siteWeb"`
	Linkedin    *string   `json:"linkedin"`
	Twitter     *string   `json:"twitter"`
	Instagram   *string   `json:"instagram"`
	Facebook    *string   `json:"facebook"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProviderDetailResponse ficha pública con el enlace de contacto WhatsApp.
type ProviderDetailResponse struct {
	ProviderResponse
	WhatsAppURL string `json:"whatsappUrl"`
}

// ProviderRecordResponse registro completo, incluido statut (respuesta de creación).
type ProviderRecordResponse struct {
	ProviderResponse
	Statut string `json:"statut"`
}

// AdminProviderResponse proyección reducida del listado de moderación (sin redes sociales).
type AdminProviderResponse struct {
	ID          int64     `json:"id"`
	Nom         string    `json:"nom"`
	Domaine     string    `json:"domaine"`
	Ville       string    `json:"ville"`
	Description string    `json:"description"`
	Telephone   string    `json:"telephone"`
	Email       *string   `json:"email"`
	Photos      []string  `json:"photos"`
	Statut      string    `json:"statut"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpdateStatusRequest cambio de estado de moderación.
type UpdateStatusRequest struct {
	Statut string `json:"statut" validate:"required,oneof=en_attente valide rejete"`
}

// StatusUpdateResponse salida de PATCH /api/admin/prestataires/:id.
type StatusUpdateResponse struct {
	ID        int64     `json:"id"`
	Nom       string    `json:"nom"`
	Statut    string    `json:"statut"`
	UpdatedAt time.Time `json:"updatedAt"`
}
