package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	CombinationUC  *usecase.CombinationUseCase
	AvailabilityUC *appcatalog.AvailabilityUseCase
	PricingUC      *appcatalog.PricingUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
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

	// Products (protegido; escritura solo admin/catalogo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	write := RequireRole(auth.RoleAdmin, auth.RoleCatalogo)
	products.Post("/", write, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", RequireRole(auth.RoleAdmin), productHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", write, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Attribute combinations (protegido)
	combinationHandler := NewCombinationHandler(deps.CombinationUC)
	products.Post("/:id/combinations", write, combinationHandler.Create)
	products.Get("/:id/combinations", combinationHandler.List)

	// Catálogo: disponibilidad y cotización (protegido, cualquier rol)
	catalogHandler := NewCatalogHandler(deps.AvailabilityUC, deps.PricingUC)
	products.Get("/:id/availability", catalogHandler.GetAvailability)
	products.Post("/:id/quote", catalogHandler.Quote)
}
