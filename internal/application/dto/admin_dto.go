package dto

// LoginRequest credenciales del área de moderación.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUserResponse datos públicos de la cuenta autenticada.
type AdminUserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse token JWT firmado + usuario.
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresIn int               `json:"expiresIn"` // segundos
	User      AdminUserResponse `json:"user"`
}
