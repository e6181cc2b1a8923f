package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercial-api/internal/application/auth"
	"github.com/jhoicas/comercial-api/internal/application/facade"
	"github.com/jhoicas/comercial-api/internal/application/reports"
	"github.com/jhoicas/comercial-api/internal/application/usecase"
	"github.com/jhoicas/comercial-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SellerUC   *usecase.SellerUseCase
	EmployeeUC *usecase.EmployeeUseCase
	AuthUC     *auth.AuthUseCase
	Facade     *facade.Facade
	KardexUC   *reports.KardexUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Sellers (protegido). Autorizar exige rol RRHH o admin.
	sellerGroup := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC, deps.Facade)
	sellerGroup.Post("/", sellerHandler.Create)
	sellerGroup.Get("/", sellerHandler.List)
	sellerGroup.Get("/:code", sellerHandler.GetByCode)
	sellerGroup.Put("/:code", sellerHandler.Update)
	sellerGroup.Delete("/:code", sellerHandler.Deactivate)
	sellerGroup.Get("/:code/validate", sellerHandler.Validate)
	sellerGroup.Post("/:code/authorize", RequireRole(entity.RoleRRHH, entity.RoleAdmin), sellerHandler.Authorize)

	// Employees (protegido, solo RRHH o admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleRRHH, entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Deactivate)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Facade, deps.KardexUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/products/:id/stock", inventoryHandler.GetStock)
	invGroup.Get("/products/:id/audit", inventoryHandler.AuditStock)
	invGroup.Get("/products/:id/movements", inventoryHandler.ListMovements)
	invGroup.Get("/products/:id/kardex.pdf", inventoryHandler.KardexPDF)
}
