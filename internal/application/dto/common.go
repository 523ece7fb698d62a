package dto

// ErrorResponse cuerpo de error HTTP. Error es el mensaje mostrado al usuario final.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse respuesta de operaciones sin cuerpo propio (DELETE).
type SuccessResponse struct {
	Success bool `json:"success"`
}
