package repository

import (
	"time"

	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de
// movimientos (append-only). No existe Update ni Delete: los movimientos son
// inmutables una vez escritos.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	// SumByProduct devuelve la suma de todos los deltas del producto.
	// Permite auditar que el contador de stock coincide con el libro.
	SumByProduct(productID string) (int, error)
}
