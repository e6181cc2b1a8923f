package repository

import "github.com/jhoicas/comercial-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE): es el
// punto de serialización por producto que exige el motor de inventario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(product *entity.Product) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Deactivate(id string) error
}
