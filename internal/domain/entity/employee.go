package entity

import "time"

// Employee representa un empleado de RRHH.
// Solo los empleados activos pueden autorizar vendedores.
type Employee struct {
	ID         string // código asignado por el negocio (HR001, HR002, ...)
	Name       string
	Role       string // cargo
	Department string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
