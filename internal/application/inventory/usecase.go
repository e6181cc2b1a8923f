package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

// RegisterMovementUseCase es el único punto por el que se muta stock.
// Registra movimientos (IN, OUT, ADJUSTMENT) de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE) sobre el producto: dos movimientos del
// mismo producto nunca leen el mismo StockBefore.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// MovementInput entrada para registrar un movimiento de inventario.
// Quantity > 0 para IN/OUT; para ADJUSTMENT lleva el signo del ajuste.
type MovementInput struct {
	ProductID    string
	Type         string
	Quantity     int
	Reason       string
	ReferenceDoc string
	UserID       string // actor responsable, lo aporta el caller
}

// MovementResult movimiento creado más las señales de umbral.
// Las señales no bloquean la mutación; el caller decide si alerta.
type MovementResult struct {
	Movement     *entity.Movement
	BelowMinimum bool
	AboveMaximum bool
}

// StockAudit compara el contador del producto contra la suma del libro.
type StockAudit struct {
	ProductID   string
	StockActual int
	LedgerSum   int
	Consistent  bool
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea la fila
// del producto y escribe el movimiento junto con el nuevo contador de stock.
// Ante un fallo de serialización reintenta una sola vez; si persiste devuelve
// domain.ErrConflict.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity == 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	result, err := uc.registerOnce(ctx, input)
	if errors.Is(err, domain.ErrConflict) {
		// Un solo reintento acotado del read-modify-write
		result, err = uc.registerOnce(ctx, input)
	}
	return result, err
}

func (uc *RegisterMovementUseCase) registerOnce(ctx context.Context, input MovementInput) (*MovementResult, error) {
	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: punto de serialización por producto
		product, err := productRepo.GetByIDForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.Active {
			return domain.ErrProductInactive
		}

		delta := input.Quantity
		if input.Type == entity.MovementTypeOUT {
			delta = -input.Quantity
		}
		before := product.StockActual
		after := before + delta
		if after < 0 {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		mov := &entity.Movement{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			Type:         input.Type,
			Quantity:     delta,
			StockBefore:  before,
			StockAfter:   after,
			Reason:       input.Reason,
			ReferenceDoc: input.ReferenceDoc,
			CreatedBy:    input.UserID,
			CreatedAt:    now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		product.StockActual = after
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		result = &MovementResult{
			Movement:     mov,
			BelowMinimum: product.BelowMinimum(),
			AboveMaximum: product.AboveMaximum(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CurrentStock devuelve el stock actual del producto (lectura del contador).
func (uc *RegisterMovementUseCase) CurrentStock(ctx context.Context, productID string) (int, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return product.StockActual, nil
}

// AuditStock verifica de forma independiente que el contador del producto
// coincide con la suma de todos los deltas del libro de movimientos.
func (uc *RegisterMovementUseCase) AuditStock(ctx context.Context, productID string) (*StockAudit, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := uc.movRepo.SumByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &StockAudit{
		ProductID:   productID,
		StockActual: product.StockActual,
		LedgerSum:   sum,
		Consistent:  product.StockActual == sum,
	}, nil
}

// ListMovements devuelve el kardex de un producto (historial ordenado).
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByProduct(productID, from, to, limit, offset)
}
