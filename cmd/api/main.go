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
	appanalytics "github.com/jhoicas/lojinha-control-api/internal/application/analytics"
	"github.com/jhoicas/lojinha-control-api/internal/application/auth"
	"github.com/jhoicas/lojinha-control-api/internal/application/usecase"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
	"github.com/jhoicas/lojinha-control-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/lojinha-control-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lojinha-control-api/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/lojinha-control-api/internal/interfaces/http"
	"github.com/jhoicas/lojinha-control-api/pkg/config"
	"github.com/jhoicas/lojinha-control-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	loc := cfg.App.Location()
	client := restapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.Upstream.MaxPages).WithLocation(loc)

	var (
		productRepo  repository.ProductRepository       = restapi.NewProductRepository(client)
		categoryRepo repository.CategoryRepository      = restapi.NewCategoryRepository(client)
		movementRepo repository.StockMovementRepository = restapi.NewStockMovementRepository(client)
	)

	// Caché de lecturas en Redis (opcional).
	if cfg.Redis.Enabled() {
		store, err := cache.NewRedisStore(cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, se continúa sin caché")
		} else {
			defer store.Close()
			productRepo = cache.NewProductRepository(productRepo, store, cfg.Redis.TTL, log)
			categoryRepo = cache.NewCategoryRepository(categoryRepo, store, cfg.Redis.TTL, log)
			movementRepo = cache.NewStockMovementRepository(movementRepo, store, cfg.Redis.TTL, log)
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché redis habilitada")
		}
	}

	sources := appanalytics.Sources{
		Products:   productRepo,
		Categories: categoryRepo,
		Movements:  movementRepo,
	}

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo, productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(sources, loc)
	lowStockUC := appanalytics.NewLowStockUseCase(productRepo)
	reportUC := appanalytics.NewReportUseCase(sources, infrapdf.NewMarotoReportRenderer(), cfg.Report.BusinessName, loc)

	authUC := auth.NewAuthUseCase(restapi.NewAuthGateway(client), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Upstream.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(log.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lojinha Control API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		MovementUC: movementUC,
		Dashboard:  dashboardUC,
		LowStock:   lowStockUC,
		Reports:    reportUC,
		JWTSecret:  cfg.JWT.Secret,
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
