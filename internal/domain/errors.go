package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada violación de regla de negocio se reporta en el punto donde ocurre;
// las fallas del almacén se envuelven como ErrStorageUnavailable en la fachada.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrSellerNotFound     = errors.New("vendedor no encontrado")
	ErrEmployeeNotFound   = errors.New("empleado no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInvalidCommission  = errors.New("comisión fuera de rango (0-100)")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductInactive    = errors.New("producto inactivo")
	ErrSellerInactive     = errors.New("vendedor inactivo")
	ErrEmployeeInactive   = errors.New("empleado inactivo")
	ErrConflict           = errors.New("conflicto de concurrencia con el estado actual")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
