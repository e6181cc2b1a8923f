package sellers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

// Razones legibles de Validate cuando el vendedor no es válido.
const (
	ReasonUnknownCode = "código de vendedor desconocido"
	ReasonPending     = "vendedor pendiente de autorización"
	ReasonInactive    = "vendedor inactivo"
)

// AuthorizeSellerUseCase gobierna la máquina de estados de autorización:
// Pending (inicial) -> Authorized (terminal). Un vendedor creado sin empleado
// aprobador nace Pending. No existe transición de vuelta.
type AuthorizeSellerUseCase struct {
	txRunner   TxRunner
	sellerRepo repository.SellerRepository
}

// NewAuthorizeSellerUseCase construye el caso de uso.
func NewAuthorizeSellerUseCase(txRunner TxRunner, sellerRepo repository.SellerRepository) *AuthorizeSellerUseCase {
	return &AuthorizeSellerUseCase{txRunner: txRunner, sellerRepo: sellerRepo}
}

// ValidationResult resultado de Validate: validez + razón legible.
type ValidationResult struct {
	IsValid bool
	Reason  string
	Seller  *entity.Seller
}

// Authorize marca al vendedor como autorizado por un empleado RRHH activo.
// Idempotente: autorizar a un vendedor ya autorizado devuelve el registro
// existente sin cambios (no es error). El override de comisión es opcional y
// debe estar en el rango 0-100.
func (uc *AuthorizeSellerUseCase) Authorize(ctx context.Context, sellerCode, employeeID string, commission *decimal.Decimal) (*entity.Seller, error) {
	if sellerCode == "" || employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	if commission != nil && !validCommission(*commission) {
		return nil, domain.ErrInvalidCommission
	}

	var authorized *entity.Seller
	err := uc.txRunner.RunSellers(ctx, func(
		sellerRepo repository.SellerRepository,
		employeeRepo repository.EmployeeRepository,
	) error {
		seller, err := sellerRepo.GetByCodeForUpdate(sellerCode)
		if err != nil {
			return err
		}
		if seller == nil {
			return domain.ErrSellerNotFound
		}
		if !seller.Active {
			return domain.ErrSellerInactive
		}
		if seller.Authorized {
			// Transición terminal ya aplicada: devolver sin tocar nada
			authorized = seller
			return nil
		}

		employee, err := employeeRepo.GetByID(employeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}
		if !employee.Active {
			return domain.ErrEmployeeInactive
		}

		now := time.Now()
		seller.Authorized = true
		seller.AuthorizedAt = &now
		seller.ApprovedBy = employee.ID
		if commission != nil {
			seller.Commission = *commission
		}
		seller.UpdatedAt = now
		if err := sellerRepo.Update(seller); err != nil {
			return err
		}
		authorized = seller
		return nil
	})
	if err != nil {
		return nil, err
	}
	return authorized, nil
}

// Validate consulta si el vendedor está autorizado y activo. Lectura pura;
// cuando no es válido devuelve una razón legible para el caller.
func (uc *AuthorizeSellerUseCase) Validate(ctx context.Context, sellerCode string) (*ValidationResult, error) {
	seller, err := uc.sellerRepo.GetByCode(sellerCode)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return &ValidationResult{IsValid: false, Reason: ReasonUnknownCode}, nil
	}
	if !seller.Active {
		return &ValidationResult{IsValid: false, Reason: ReasonInactive, Seller: seller}, nil
	}
	if seller.Pending() {
		return &ValidationResult{IsValid: false, Reason: ReasonPending, Seller: seller}, nil
	}
	return &ValidationResult{IsValid: true, Seller: seller}, nil
}

func validCommission(c decimal.Decimal) bool {
	return !c.LessThan(decimal.Zero) && !c.GreaterThan(decimal.NewFromInt(100))
}
