package entity

import "time"

// Roles de usuario. "user" es de solo lectura; "admin" puede mutar stock y facturas.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
