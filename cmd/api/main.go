package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kardexcloud/kardex-api/internal/application/auth"
	"github.com/kardexcloud/kardex-api/internal/application/inventory"
	"github.com/kardexcloud/kardex-api/internal/application/usecase"
	infrapdf "github.com/kardexcloud/kardex-api/internal/infrastructure/pdf"
	"github.com/kardexcloud/kardex-api/internal/infrastructure/postgres"
	httpRouter "github.com/kardexcloud/kardex-api/internal/interfaces/http"
	"github.com/kardexcloud/kardex-api/pkg/config"
	"github.com/kardexcloud/kardex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	unitRepo := postgres.NewUnitOfMeasureRepository(pool)
	productUnitRepo := postgres.NewProductUnitRepository(pool)
	typeRepo := postgres.NewMovementTypeRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	configRepo := postgres.NewProductWarehouseConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locationRepo)
	productUC := usecase.NewProductUseCase(productRepo, unitRepo, productUnitRepo, warehouseRepo, locationRepo, configRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, typeRepo, warehouseRepo, locationRepo, productRepo, productUnitRepo)

	pdfGenerator := infrapdf.NewKardexPDFGenerator()
	stockUC := inventory.NewStockUseCase(movementRepo, pdfGenerator)
	reorderUC := inventory.NewReorderUseCase(configRepo, movementRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		UserUC:      userUC,
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		MovementUC:  movementUC,
		StockUC:     stockUC,
		ReorderUC:   reorderUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
