package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSellerRequest body para POST /api/sellers. El vendedor nace Pending.
type CreateSellerRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Territory  string          `json:"territory"`
	Commission decimal.Decimal `json:"commission"`
}

// UpdateSellerRequest body para PUT /api/sellers/:code. Campos opcionales.
// No permite tocar el flag de autorización (eso pasa por /authorize).
type UpdateSellerRequest struct {
	Name       *string          `json:"name,omitempty"`
	Territory  *string          `json:"territory,omitempty"`
	Commission *decimal.Decimal `json:"commission,omitempty"`
}

// AuthorizeSellerRequest body para POST /api/sellers/:code/authorize.
type AuthorizeSellerRequest struct {
	EmployeeID string           `json:"employee_id"`
	Commission *decimal.Decimal `json:"commission,omitempty"` // override opcional
}

// SellerResponse representación de un vendedor en respuestas.
type SellerResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Territory    string          `json:"territory"`
	Commission   decimal.Decimal `json:"commission"`
	Authorized   bool            `json:"authorized"`
	AuthorizedAt *time.Time      `json:"authorized_at,omitempty"`
	ApprovedBy   string          `json:"approved_by,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SellerListResponse listado paginado de vendedores.
type SellerListResponse struct {
	Items []SellerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ValidateSellerResponse resultado de la consulta de validez de un vendedor.
type ValidateSellerResponse struct {
	IsValid bool            `json:"is_valid"`
	Reason  string          `json:"reason,omitempty"`
	Seller  *SellerResponse `json:"seller,omitempty"`
}
