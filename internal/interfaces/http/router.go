// Package http wires the Fiber routes to the application layer.
package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/onderdelen-beheer/api/internal/application/analytics"
	"github.com/onderdelen-beheer/api/internal/application/auth"
	"github.com/onderdelen-beheer/api/internal/application/parts"
	"github.com/onderdelen-beheer/api/internal/application/reports"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	PartsUC     *parts.UseCase
	ReportsUC   *reports.UseCase
	ExportUC    *reports.ExportUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Parts listing
	partHandler := NewPartHandler(deps.PartsUC)
	protected.Get("/parts", partHandler.List)

	// Reports
	reportHandler := NewReportHandler(deps.ReportsUC, deps.ExportUC)
	rep := protected.Group("/reports")
	rep.Get("/sales", reportHandler.SalesSummary)
	rep.Get("/valuation", reportHandler.InventoryValuation)
	rep.Get("/profit-loss", reportHandler.ProfitLoss)
	rep.Get("/dead-stock", reportHandler.DeadStock)
	rep.Get("/export/inventory", reportHandler.ExportInventory)
}
