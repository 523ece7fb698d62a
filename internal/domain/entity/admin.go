package entity

import "time"

// RoleAdmin único rol con acceso al área de moderación.
const RoleAdmin = "admin"

// Admin cuenta con acceso al área de moderación.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Role         string
	CreatedAt    time.Time
}
