package sellers

import (
	"context"

	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La autorización es un read-modify-write
// atómico sobre la fila del vendedor.
type TxRunner interface {
	RunSellers(ctx context.Context, fn func(
		sellerRepo repository.SellerRepository,
		employeeRepo repository.EmployeeRepository,
	) error) error
}
