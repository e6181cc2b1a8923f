package reports

import (
	"context"
	"time"

	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

// KardexPDFGenerator genera el PDF del kardex de un producto.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, product *entity.Product, movements []*entity.Movement) ([]byte, error)
}

// KardexUseCase arma el reporte de historial de movimientos de un producto.
type KardexUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	generator   KardexPDFGenerator
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	generator KardexPDFGenerator,
) *KardexUseCase {
	return &KardexUseCase{productRepo: productRepo, movRepo: movRepo, generator: generator}
}

// máximo de filas que entran en un reporte; el kardex completo se consulta por API
const kardexMaxRows = 500

// GenerateKardexPDF genera el PDF del kardex de un producto en un rango de fechas.
func (uc *KardexUseCase) GenerateKardexPDF(ctx context.Context, productID string, from, to *time.Time) ([]byte, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID, from, to, kardexMaxRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateKardexPDF(ctx, product, movements)
}
