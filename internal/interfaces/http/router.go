package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardexcloud/kardex-api/internal/application/auth"
	"github.com/kardexcloud/kardex-api/internal/application/inventory"
	"github.com/kardexcloud/kardex-api/internal/application/usecase"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *inventory.MovementUseCase
	StockUC     *inventory.StockUseCase
	ReorderUC   *inventory.ReorderUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Roles: admin administra catálogos y
// usuarios, operador registra movimientos, consulta solo lee.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; el alta inicial de empresa no tiene token)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	writers := RequireRole(entity.RoleAdmin, entity.RoleOperador)

	// Users (protegido, solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Warehouses (lectura para todos; escritura solo admin)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/locations/tree", warehouseHandler.LocationTree)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Deactivate)
	warehouses.Post("/:id/activate", adminOnly, warehouseHandler.Activate)
	warehouses.Post("/:id/locations", adminOnly, warehouseHandler.CreateLocation)
	warehouses.Put("/:id/locations/:locationId", adminOnly, warehouseHandler.UpdateLocation)
	warehouses.Delete("/:id/locations/:locationId", adminOnly, warehouseHandler.DeactivateLocation)

	// Products (lectura para todos; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/units", productHandler.ListUnits)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)
	products.Post("/:id/units", adminOnly, productHandler.AddUnit)
	products.Post("/:id/stock-config", adminOnly, productHandler.ConfigStock)

	// Catálogo global de unidades
	protected.Get("/units", productHandler.UnitCatalog)

	// Inventario: movimientos (escritura admin/operador), consultas para todos
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.StockUC, deps.ReorderUC)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Get("/movement-types", inventoryHandler.ListTypes)
	invGroup.Get("/stock", inventoryHandler.GetStock)
	invGroup.Get("/kardex", inventoryHandler.GetKardex)
	invGroup.Get("/kardex/pdf", inventoryHandler.GetKardexPDF)
	invGroup.Get("/reorder-report", inventoryHandler.ReorderReport)
	invGroup.Post("/movements", writers, inventoryHandler.CreateMovement)
	invGroup.Post("/movements/:id/lines", writers, inventoryHandler.AddLine)
	invGroup.Delete("/movements/:id/lines/:lineId", writers, inventoryHandler.RemoveLine)
	invGroup.Post("/movements/:id/confirm", writers, inventoryHandler.ConfirmMovement)
	invGroup.Post("/movements/:id/void", writers, inventoryHandler.VoidMovement)
}
