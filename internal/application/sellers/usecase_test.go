package sellers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercial-api/internal/application/sellers"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	sellers   map[string]*entity.Seller
	employees map[string]*entity.Employee
}

func newMemStore() *memStore {
	return &memStore{
		sellers:   make(map[string]*entity.Seller),
		employees: make(map[string]*entity.Employee),
	}
}

type memSellerRepo struct{ store *memStore }

func (r *memSellerRepo) Create(s *entity.Seller) error {
	cp := *s
	r.store.sellers[s.Code] = &cp
	return nil
}

func (r *memSellerRepo) GetByCode(code string) (*entity.Seller, error) {
	s, ok := r.store.sellers[code]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSellerRepo) GetByCodeForUpdate(code string) (*entity.Seller, error) {
	return r.GetByCode(code)
}

func (r *memSellerRepo) Update(s *entity.Seller) error {
	cp := *s
	r.store.sellers[s.Code] = &cp
	return nil
}

func (r *memSellerRepo) List(onlyActive bool, limit, offset int) ([]*entity.Seller, error) {
	return nil, nil
}

func (r *memSellerRepo) Deactivate(code string) error {
	if s, ok := r.store.sellers[code]; ok {
		s.Active = false
	}
	return nil
}

type memEmployeeRepo struct{ store *memStore }

func (r *memEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.store.employees[e.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.store.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.store.employees[e.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) List(onlyActive bool, limit, offset int) ([]*entity.Employee, error) {
	return nil, nil
}

func (r *memEmployeeRepo) Deactivate(id string) error {
	if e, ok := r.store.employees[id]; ok {
		e.Active = false
	}
	return nil
}

type memTxRunner struct{ store *memStore }

func (t *memTxRunner) RunSellers(ctx context.Context, fn func(repository.SellerRepository, repository.EmployeeRepository) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(&memSellerRepo{store: t.store}, &memEmployeeRepo{store: t.store})
}

func newUseCase(store *memStore) *sellers.AuthorizeSellerUseCase {
	return sellers.NewAuthorizeSellerUseCase(&memTxRunner{store: store}, &memSellerRepo{store: store})
}

func seedSeller(store *memStore, code string, authorized, active bool) {
	now := time.Now()
	s := &entity.Seller{
		Code: code, Name: "Vendedor " + code, Territory: "Bogotá",
		Commission: decimal.NewFromFloat(5), Authorized: authorized, Active: active,
		CreatedAt: now, UpdatedAt: now,
	}
	if authorized {
		s.AuthorizedAt = &now
		s.ApprovedBy = "HR001"
	}
	store.sellers[code] = s
}

func seedEmployee(store *memStore, id string, active bool) {
	now := time.Now()
	store.employees[id] = &entity.Employee{
		ID: id, Name: "Empleado " + id, Role: "Analista RRHH",
		Department: "Recursos Humanos", Active: active, CreatedAt: now, UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_PendingPasaAAuthorized(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V006", false, true)
	seedEmployee(store, "HR001", true)
	uc := newUseCase(store)

	seller, err := uc.Authorize(context.Background(), "V006", "HR001", nil)
	require.NoError(t, err)
	require.NotNil(t, seller)

	assert.True(t, seller.Authorized)
	assert.Equal(t, "HR001", seller.ApprovedBy)
	require.NotNil(t, seller.AuthorizedAt)
	assert.False(t, seller.Pending())

	// El cambio quedó persistido
	persisted := store.sellers["V006"]
	assert.True(t, persisted.Authorized)
	assert.Equal(t, "HR001", persisted.ApprovedBy)
}

func TestAuthorize_EsIdempotente(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V001", false, true)
	seedEmployee(store, "HR001", true)
	seedEmployee(store, "HR002", true)
	uc := newUseCase(store)
	ctx := context.Background()

	first, err := uc.Authorize(ctx, "V001", "HR001", nil)
	require.NoError(t, err)

	// Segunda autorización por otro empleado: no es error y no cambia nada
	second, err := uc.Authorize(ctx, "V001", "HR002", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ApprovedBy, second.ApprovedBy, "el aprobador original se conserva")
	assert.Equal(t, first.AuthorizedAt.Unix(), second.AuthorizedAt.Unix())
}

func TestAuthorize_IdempotenteIgnoraOverrideDeComision(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V001", true, true)
	seedEmployee(store, "HR001", true)
	uc := newUseCase(store)

	override := decimal.NewFromFloat(9.5)
	seller, err := uc.Authorize(context.Background(), "V001", "HR001", &override)
	require.NoError(t, err)
	assert.True(t, seller.Commission.Equal(decimal.NewFromFloat(5)),
		"la comisión de un vendedor ya autorizado no se toca")
}

func TestAuthorize_OverrideDeComision(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V002", false, true)
	seedEmployee(store, "HR001", true)
	uc := newUseCase(store)

	override := decimal.NewFromFloat(7.5)
	seller, err := uc.Authorize(context.Background(), "V002", "HR001", &override)
	require.NoError(t, err)
	assert.True(t, seller.Commission.Equal(override))
}

func TestAuthorize_ComisionFueraDeRango(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V002", false, true)
	seedEmployee(store, "HR001", true)
	uc := newUseCase(store)
	ctx := context.Background()

	for _, v := range []float64{-0.5, 100.01, 150} {
		override := decimal.NewFromFloat(v)
		_, err := uc.Authorize(ctx, "V002", "HR001", &override)
		assert.ErrorIs(t, err, domain.ErrInvalidCommission, "comisión %v", v)
	}

	// El vendedor sigue Pending: el rechazo no dejó efectos parciales
	assert.False(t, store.sellers["V002"].Authorized)
}

func TestAuthorize_VendedorInexistente(t *testing.T) {
	store := newMemStore()
	seedEmployee(store, "HR001", true)
	uc := newUseCase(store)

	_, err := uc.Authorize(context.Background(), "V999", "HR001", nil)
	assert.ErrorIs(t, err, domain.ErrSellerNotFound)
}

func TestAuthorize_VendedorInactivo(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V003", false, false)
	seedEmployee(store, "HR001", true)
	uc := newUseCase(store)

	_, err := uc.Authorize(context.Background(), "V003", "HR001", nil)
	assert.ErrorIs(t, err, domain.ErrSellerInactive)
}

func TestAuthorize_EmpleadoInexistente(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V004", false, true)
	uc := newUseCase(store)

	_, err := uc.Authorize(context.Background(), "V004", "HR999", nil)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.False(t, store.sellers["V004"].Authorized, "el vendedor debe seguir Pending")
}

func TestAuthorize_EmpleadoInactivoNoAutoriza(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V005", false, true)
	seedEmployee(store, "HR009", false)
	uc := newUseCase(store)

	_, err := uc.Authorize(context.Background(), "V005", "HR009", nil)
	assert.ErrorIs(t, err, domain.ErrEmployeeInactive)

	persisted := store.sellers["V005"]
	assert.False(t, persisted.Authorized, "el vendedor debe seguir Pending")
	assert.Nil(t, persisted.AuthorizedAt)
	assert.Empty(t, persisted.ApprovedBy)
}

func TestAuthorize_EntradaVacia(t *testing.T) {
	uc := newUseCase(newMemStore())
	ctx := context.Background()

	_, err := uc.Authorize(ctx, "", "HR001", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Authorize(ctx, "V001", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_AutorizadoYActivoEsValido(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V001", true, true)
	uc := newUseCase(store)

	res, err := uc.Validate(context.Background(), "V001")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Reason)
	require.NotNil(t, res.Seller)
	assert.Equal(t, "V001", res.Seller.Code)
}

func TestValidate_Razones(t *testing.T) {
	store := newMemStore()
	seedSeller(store, "V-pending", false, true)
	seedSeller(store, "V-inactive", true, false)
	uc := newUseCase(store)
	ctx := context.Background()

	cases := []struct {
		code   string
		reason string
	}{
		{"V-desconocido", sellers.ReasonUnknownCode},
		{"V-pending", sellers.ReasonPending},
		{"V-inactive", sellers.ReasonInactive},
	}
	for _, tc := range cases {
		res, err := uc.Validate(ctx, tc.code)
		require.NoError(t, err)
		assert.False(t, res.IsValid, tc.code)
		assert.Equal(t, tc.reason, res.Reason, tc.code)
	}
}
