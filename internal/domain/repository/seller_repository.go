package repository

import "github.com/jhoicas/comercial-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller (DIP).
// GetByCodeForUpdate bloquea la fila del vendedor durante la autorización
// (read-modify-write atómico por código).
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByCode(code string) (*entity.Seller, error)
	GetByCodeForUpdate(code string) (*entity.Seller, error)
	Update(seller *entity.Seller) error
	List(onlyActive bool, limit, offset int) ([]*entity.Seller, error)
	Deactivate(code string) error
}
