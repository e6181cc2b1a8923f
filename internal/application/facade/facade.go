// Package facade expone el único punto de entrada a los subsistemas de
// inventario y autorización de vendedores. Traduce los resultados de dominio
// a una forma uniforme (éxito, payload, mensaje, lista de errores) y nunca
// deja escapar fallas propias del almacén: cualquier error no reconocido se
// reporta como STORAGE_UNAVAILABLE.
package facade

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/comercial-api/internal/application/inventory"
	"github.com/jhoicas/comercial-api/internal/application/sellers"
	"github.com/jhoicas/comercial-api/internal/domain"
)

// Códigos estables de error que ve el caller.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidState       = "INVALID_STATE"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeConflict           = "CONFLICT"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// Result forma uniforme de respuesta de la fachada.
type Result struct {
	Success bool
	Code    string // vacío cuando Success
	Message string
	Data    any
	Errors  []string
}

// Facade compone el motor de inventario y el registro de autorización.
type Facade struct {
	inventory *inventory.RegisterMovementUseCase
	sellers   *sellers.AuthorizeSellerUseCase
}

// New construye la fachada.
func New(inv *inventory.RegisterMovementUseCase, sel *sellers.AuthorizeSellerUseCase) *Facade {
	return &Facade{inventory: inv, sellers: sel}
}

// RegisterMovement registra un movimiento de stock a través del motor de
// inventario. El userID es el actor responsable para auditoría.
func (f *Facade) RegisterMovement(ctx context.Context, input inventory.MovementInput) Result {
	res, err := f.inventory.RegisterMovement(ctx, input)
	if err != nil {
		return fail(err)
	}
	return ok(res, "movimiento registrado")
}

// CurrentStock devuelve el stock actual de un producto.
func (f *Facade) CurrentStock(ctx context.Context, productID string) Result {
	stock, err := f.inventory.CurrentStock(ctx, productID)
	if err != nil {
		return fail(err)
	}
	return ok(stock, "")
}

// AuditStock compara el contador de stock contra la suma del libro.
func (f *Facade) AuditStock(ctx context.Context, productID string) Result {
	audit, err := f.inventory.AuditStock(ctx, productID)
	if err != nil {
		return fail(err)
	}
	return ok(audit, "")
}

// ListMovements devuelve el kardex de un producto.
func (f *Facade) ListMovements(ctx context.Context, productID string, from, to *time.Time, limit, offset int) Result {
	movs, err := f.inventory.ListMovements(ctx, productID, from, to, limit, offset)
	if err != nil {
		return fail(err)
	}
	return ok(movs, "")
}

// AuthorizeSeller ejecuta la transición Pending -> Authorized.
func (f *Facade) AuthorizeSeller(ctx context.Context, sellerCode, employeeID string, commission *decimal.Decimal) Result {
	seller, err := f.sellers.Authorize(ctx, sellerCode, employeeID, commission)
	if err != nil {
		return fail(err)
	}
	return ok(seller, "vendedor autorizado")
}

// ValidateSeller consulta la validez de un vendedor (lectura pura).
func (f *Facade) ValidateSeller(ctx context.Context, sellerCode string) Result {
	res, err := f.sellers.Validate(ctx, sellerCode)
	if err != nil {
		return fail(err)
	}
	return ok(res, "")
}

func ok(data any, msg string) Result {
	return Result{Success: true, Message: msg, Data: data}
}

// fail mapea errores de dominio a códigos estables. Cualquier error que no
// sea una violación de regla de negocio conocida se trata como falla del
// almacén y se reporta como STORAGE_UNAVAILABLE, sin filtrar el detalle.
func fail(err error) Result {
	code := CodeStorageUnavailable
	msg := domain.ErrStorageUnavailable.Error()

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrSellerNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound):
		code, msg = CodeNotFound, err.Error()
	case errors.Is(err, domain.ErrProductInactive),
		errors.Is(err, domain.ErrSellerInactive),
		errors.Is(err, domain.ErrEmployeeInactive):
		code, msg = CodeInvalidState, err.Error()
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidCommission):
		code, msg = CodeInvalidInput, err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		code, msg = CodeInsufficientStock, err.Error()
	case errors.Is(err, domain.ErrConflict):
		code, msg = CodeConflict, err.Error()
	}

	return Result{Success: false, Code: code, Message: msg, Errors: []string{msg}}
}
