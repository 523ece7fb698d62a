package dto

import "time"

// UploadResponse metadatos de una imagen alojada. SecureURL es la URL que el formulario
// de inscripción añade a photos.
type UploadResponse struct {
	SecureURL string    `json:"secure_url"`
	PublicID  string    `json:"public_id"`
	Format    string    `json:"format"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Bytes     int64     `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}
