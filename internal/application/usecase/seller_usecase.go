package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/comercial-api/internal/application/dto"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

// SellerUseCase casos de uso CRUD para vendedores.
// El flag de autorización no se toca aquí: pertenece al registro de
// autorización (sellers.AuthorizeSellerUseCase).
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create crea un vendedor en estado Pending (sin autorizar).
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Commission.LessThan(decimal.Zero) || in.Commission.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidCommission
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	seller := &entity.Seller{
		Code:       in.Code,
		Name:       in.Name,
		Territory:  in.Territory,
		Commission: in.Commission,
		Authorized: false,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// GetByCode obtiene un vendedor por código.
func (uc *SellerUseCase) GetByCode(code string) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	return toSellerResponse(seller), nil
}

// Update actualiza datos del vendedor. No toca autorización ni Active.
func (uc *SellerUseCase) Update(code string, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	if in.Name != nil {
		seller.Name = *in.Name
	}
	if in.Territory != nil {
		seller.Territory = *in.Territory
	}
	if in.Commission != nil {
		if in.Commission.LessThan(decimal.Zero) || in.Commission.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidCommission
		}
		seller.Commission = *in.Commission
	}
	seller.UpdatedAt = time.Now()
	if err := uc.repo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// List lista vendedores con paginación.
func (uc *SellerUseCase) List(onlyActive bool, limit, offset int) (*dto.SellerListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSellerResponse(s))
	}
	return &dto.SellerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate baja lógica del vendedor. Es la única forma de "revocar":
// la máquina de estados de autorización no tiene vuelta atrás.
func (uc *SellerUseCase) Deactivate(code string) error {
	seller, err := uc.repo.GetByCode(code)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrSellerNotFound
	}
	return uc.repo.Deactivate(code)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{
		Code:         s.Code,
		Name:         s.Name,
		Territory:    s.Territory,
		Commission:   s.Commission,
		Authorized:   s.Authorized,
		AuthorizedAt: s.AuthorizedAt,
		ApprovedBy:   s.ApprovedBy,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
