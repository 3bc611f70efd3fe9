package entity

import "time"

// Roles disponibles (enum user_role de la base de datos).
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User representa un perfil de usuario del sistema.
type User struct {
	ID           string
	Email        string
	FullName     string
	Role         string // ver constantes Role*
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
