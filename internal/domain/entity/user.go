package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleRRHH      = "rrhh"
)

// User representa un usuario del sistema (login del panel web).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Name         string
	Role         string // admin, bodeguero, rrhh
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
