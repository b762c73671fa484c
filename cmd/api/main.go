package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/onderdelen-beheer/api/internal/application/analytics"
	"github.com/onderdelen-beheer/api/internal/application/auth"
	"github.com/onderdelen-beheer/api/internal/application/parts"
	"github.com/onderdelen-beheer/api/internal/application/reports"
	"github.com/onderdelen-beheer/api/internal/infrastructure/excel"
	infrapdf "github.com/onderdelen-beheer/api/internal/infrastructure/pdf"
	"github.com/onderdelen-beheer/api/internal/infrastructure/postgres"
	httpRouter "github.com/onderdelen-beheer/api/internal/interfaces/http"
	"github.com/onderdelen-beheer/api/pkg/config"
	"github.com/onderdelen-beheer/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	partRepo := postgres.NewPartRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	authUC := auth.NewUseCase(auth.Config{
		AccessCodeHash: cfg.Auth.AccessCodeHash,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		JWTExpMinutes:  cfg.JWT.Expiration,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(partRepo, saleRepo)
	partsUC := parts.NewUseCase(partRepo)
	reportsUC := reports.NewUseCase(partRepo, saleRepo, infrapdf.NewReportGenerator())
	exportUC := reports.NewExportUseCase(partRepo, excel.NewInventoryExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // report generation can take a moment
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		PartsUC:     partsUC,
		ReportsUC:   reportsUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
