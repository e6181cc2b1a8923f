package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller representa un vendedor comercial.
// Máquina de estados de autorización: Pending (inicial) -> Authorized
// (terminal). No existe transición de vuelta a Pending; dar de baja a un
// vendedor se hace con el flag Active, no revirtiendo la autorización.
type Seller struct {
	Code         string          // código único asignado por el negocio (V001, V002, ...)
	Name         string
	Territory    string
	Commission   decimal.Decimal // porcentaje 0-100
	Authorized   bool
	AuthorizedAt *time.Time // nil mientras esté Pending
	ApprovedBy   string     // ID del empleado RRHH que aprobó; vacío mientras Pending
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Pending indica si el vendedor aún no fue autorizado.
func (s *Seller) Pending() bool { return !s.Authorized }
