package dto

import "time"

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	ID         string `json:"id"` // código de negocio (HR001, ...)
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id. Campos opcionales.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// EmployeeResponse representación de un empleado en respuestas.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
