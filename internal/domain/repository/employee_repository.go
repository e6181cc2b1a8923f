package repository

import "github.com/jhoicas/comercial-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(onlyActive bool, limit, offset int) ([]*entity.Employee, error)
	Deactivate(id string) error
}
