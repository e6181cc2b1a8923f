// seed puebla la base con datos de arranque: empleados RRHH, vendedores en
// estado Pending, productos del catálogo y stock inicial vía movimientos IN.
// Idempotente: las entidades que ya existen se saltan, los movimientos de
// stock inicial solo se registran cuando el producto se crea en esta corrida.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"os"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/comercial-api/internal/application/dto"
	"github.com/jhoicas/comercial-api/internal/application/inventory"
	"github.com/jhoicas/comercial-api/internal/application/usecase"
	"github.com/jhoicas/comercial-api/internal/domain"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
	"github.com/jhoicas/comercial-api/internal/infrastructure/postgres"
	"github.com/jhoicas/comercial-api/pkg/config"
	"github.com/jhoicas/comercial-api/pkg/logger"
)

const seedActor = "seed"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Str("db", cfg.DB.DBName).Msg("seed: iniciando")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	sellerUC := usecase.NewSellerUseCase(sellerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, movementRepo)

	employees := []dto.CreateEmployeeRequest{
		{ID: "HR001", Name: "Ana Castaño", Role: "Gerente RRHH", Department: "Recursos Humanos"},
		{ID: "HR002", Name: "Carlos Pinzón", Role: "Analista RRHH", Department: "Recursos Humanos"},
		{ID: "HR003", Name: "Marta Quintero", Role: "Coordinadora RRHH", Department: "Recursos Humanos"},
	}
	for _, e := range employees {
		if _, err := employeeUC.Create(e); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("id", e.ID).Msg("empleado ya existe, omitido")
				continue
			}
			log.Fatal().Err(err).Str("id", e.ID).Msg("crear empleado")
		}
		log.Info().Str("id", e.ID).Msg("empleado creado")
	}

	sellersSeed := []dto.CreateSellerRequest{
		{Code: "V001", Name: "Jorge Ramírez", Territory: "Bogotá Norte", Commission: decimal.NewFromFloat(5.0)},
		{Code: "V002", Name: "Lucía Herrera", Territory: "Bogotá Sur", Commission: decimal.NewFromFloat(4.5)},
		{Code: "V003", Name: "Pedro Salazar", Territory: "Medellín", Commission: decimal.NewFromFloat(6.0)},
		{Code: "V004", Name: "Diana Torres", Territory: "Cali", Commission: decimal.NewFromFloat(5.5)},
		{Code: "V005", Name: "Andrés Mejía", Territory: "Barranquilla", Commission: decimal.NewFromFloat(5.0)},
	}
	for _, s := range sellersSeed {
		if _, err := sellerUC.Create(s); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("code", s.Code).Msg("vendedor ya existe, omitido")
				continue
			}
			log.Fatal().Err(err).Str("code", s.Code).Msg("crear vendedor")
		}
		log.Info().Str("code", s.Code).Msg("vendedor creado (Pending)")
	}

	type productSeed struct {
		req          dto.CreateProductRequest
		initialStock int
	}
	products := []productSeed{
		{
			req: dto.CreateProductRequest{
				SKU: "SKU-0001", Name: "Cuaderno argollado 100 hojas", Category: "papelería",
				Price: decimal.NewFromFloat(8500), StockMinimo: 20, StockMaximo: 500, UnitMeasure: "unidad",
			},
			initialStock: 120,
		},
		{
			req: dto.CreateProductRequest{
				SKU: "SKU-0002", Name: "Resma papel carta 75g", Category: "papelería",
				Price: decimal.NewFromFloat(14900), StockMinimo: 10, StockMaximo: 300, UnitMeasure: "resma",
			},
			initialStock: 80,
		},
		{
			req: dto.CreateProductRequest{
				SKU: "SKU-0003", Name: "Bolígrafo tinta negra", Category: "escritura",
				Price: decimal.NewFromFloat(1200), StockMinimo: 50, StockMaximo: 2000, UnitMeasure: "unidad",
			},
			initialStock: 600,
		},
	}
	for _, p := range products {
		created, err := productUC.Create(p.req)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("sku", p.req.SKU).Msg("producto ya existe, omitido")
				continue
			}
			log.Fatal().Err(err).Str("sku", p.req.SKU).Msg("crear producto")
		}
		log.Info().Str("sku", p.req.SKU).Str("id", created.ID).Msg("producto creado")

		if p.initialStock <= 0 {
			continue
		}
		// Stock inicial vía movimiento IN: nunca se escribe el contador a mano
		if _, err := registerMovementUC.RegisterMovement(ctx, inventory.MovementInput{
			ProductID:    created.ID,
			Type:         entity.MovementTypeIN,
			Quantity:     p.initialStock,
			Reason:       "stock inicial",
			ReferenceDoc: "SEED",
			UserID:       seedActor,
		}); err != nil {
			log.Fatal().Err(err).Str("sku", p.req.SKU).Msg("registrar stock inicial")
		}
		log.Info().Str("sku", p.req.SKU).Int("qty", p.initialStock).Msg("stock inicial registrado")
	}

	log.Info().Msg("seed: completado")
	os.Exit(0)
}
