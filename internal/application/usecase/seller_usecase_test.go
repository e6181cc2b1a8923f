package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercial-api/internal/application/dto"
	"github.com/jhoicas/comercial-api/internal/application/usecase"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

// fakeSellerRepo repositorio en memoria para los tests de vendedores.
type fakeSellerRepo struct {
	sellers map[string]*entity.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: make(map[string]*entity.Seller)}
}

func (r *fakeSellerRepo) Create(s *entity.Seller) error {
	cp := *s
	r.sellers[s.Code] = &cp
	return nil
}

func (r *fakeSellerRepo) GetByCode(code string) (*entity.Seller, error) {
	s, ok := r.sellers[code]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSellerRepo) GetByCodeForUpdate(code string) (*entity.Seller, error) {
	return r.GetByCode(code)
}

func (r *fakeSellerRepo) Update(s *entity.Seller) error {
	cp := *s
	r.sellers[s.Code] = &cp
	return nil
}

func (r *fakeSellerRepo) List(onlyActive bool, limit, offset int) ([]*entity.Seller, error) {
	var out []*entity.Seller
	for _, s := range r.sellers {
		if onlyActive && !s.Active {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSellerRepo) Deactivate(code string) error {
	if s, ok := r.sellers[code]; ok {
		s.Active = false
	}
	return nil
}

func TestSellerCreate_NacePending(t *testing.T) {
	uc := usecase.NewSellerUseCase(newFakeSellerRepo())

	out, err := uc.Create(dto.CreateSellerRequest{
		Code: "V010", Name: "Nuevo", Territory: "Cali", Commission: decimal.NewFromFloat(4),
	})
	require.NoError(t, err)

	assert.False(t, out.Authorized, "todo vendedor nace Pending")
	assert.Nil(t, out.AuthorizedAt)
	assert.Empty(t, out.ApprovedBy)
}

func TestSellerCreate_ComisionFueraDeRango(t *testing.T) {
	uc := usecase.NewSellerUseCase(newFakeSellerRepo())

	_, err := uc.Create(dto.CreateSellerRequest{
		Code: "V010", Name: "Nuevo", Commission: decimal.NewFromInt(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCommission)
}

func TestSellerCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewSellerUseCase(newFakeSellerRepo())

	_, err := uc.Create(dto.CreateSellerRequest{Code: "V010", Name: "Uno"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateSellerRequest{Code: "V010", Name: "Dos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSellerUpdate_NoTocaAutorizacion(t *testing.T) {
	repo := newFakeSellerRepo()
	uc := usecase.NewSellerUseCase(repo)

	_, err := uc.Create(dto.CreateSellerRequest{Code: "V010", Name: "Nuevo"})
	require.NoError(t, err)

	// Marcar como autorizado por fuera (lo haría el registro de autorización)
	now := time.Now()
	repo.sellers["V010"].Authorized = true
	repo.sellers["V010"].AuthorizedAt = &now
	repo.sellers["V010"].ApprovedBy = "HR001"

	newName := "Renombrado"
	out, err := uc.Update("V010", dto.UpdateSellerRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", out.Name)
	assert.True(t, out.Authorized, "Update no debe tocar el estado de autorización")
	assert.Equal(t, "HR001", out.ApprovedBy)
}

func TestSellerDeactivate_BajaLogica(t *testing.T) {
	repo := newFakeSellerRepo()
	uc := usecase.NewSellerUseCase(repo)

	_, err := uc.Create(dto.CreateSellerRequest{Code: "V010", Name: "Nuevo"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate("V010"))

	got, err := uc.GetByCode("V010")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	assert.ErrorIs(t, uc.Deactivate("nope"), domain.ErrSellerNotFound)
}
