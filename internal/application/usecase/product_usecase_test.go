package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercial-api/internal/application/dto"
	"github.com/jhoicas/comercial-api/internal/application/usecase"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria para los tests de CRUD.
type fakeProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:  make(map[string]*entity.Product),
		bySKU: make(map[string]*entity.Product),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.bySKU[p.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	p, ok := r.bySKU[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.bySKU[p.SKU] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(p *entity.Product) error { return r.Update(p) }

func (r *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if onlyActive && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	if p, ok := r.byID[id]; ok {
		p.Active = false
		r.bySKU[p.SKU].Active = false
	}
	return nil
}

func TestProductCreate_NaceConStockCero(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		SKU: "SKU-001", Name: "Cuaderno", Price: decimal.NewFromInt(8500),
		StockMinimo: 5, StockMaximo: 100,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 0, out.StockActual, "el stock inicial entra vía movimientos, nunca en el alta")
	assert.True(t, out.Active)
	assert.Equal(t, "unidad", out.UnitMeasure, "unidad de medida por defecto")
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin SKU", dto.CreateProductRequest{Name: "X"}},
		{"sin nombre", dto.CreateProductRequest{SKU: "S1"}},
		{"precio negativo", dto.CreateProductRequest{SKU: "S1", Name: "X", Price: decimal.NewFromInt(-1)}},
		{"mínimo mayor que máximo", dto.CreateProductRequest{SKU: "S1", Name: "X", StockMinimo: 10, StockMaximo: 5}},
		{"umbral negativo", dto.CreateProductRequest{SKU: "S1", Name: "X", StockMinimo: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Uno"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Dos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Uno"})
	require.NoError(t, err)

	// Simular stock acumulado por movimientos
	repo.byID[created.ID].StockActual = 42

	newName := "Uno renombrado"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Uno renombrado", out.Name)
	assert.Equal(t, 42, out.StockActual, "Update no debe alterar el contador de stock")
}

func TestProductUpdate_UmbralesInvalidos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Uno", StockMinimo: 5, StockMaximo: 50})
	require.NoError(t, err)

	badMin := 80
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{StockMinimo: &badMin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mínimo 80 > máximo 50 debe rechazarse")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "X"
	out, err := uc.Update("nope", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDeactivate_BajaLogica(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-001", Name: "Uno"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))

	// La fila sigue existiendo, solo cambia el flag
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	assert.ErrorIs(t, uc.Deactivate("nope"), domain.ErrNotFound)
}
