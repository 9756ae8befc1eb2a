package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestao-fornecedores/internal/application/analytics"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC    *usecase.SupplierUseCase
	BonusUC       *usecase.BonusUseCase
	LossUC        *usecase.LossUseCase
	GondolaUC     *usecase.GondolaContractUseCase
	NegotiationUC *usecase.NegotiationUseCase
	DashboardUC   *appanalytics.DashboardUseCase
}

// recordHandler operaciones HTTP comunes a cada colección.
type recordHandler interface {
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
	Export(c *fiber.Ctx) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	registerRecords(api.Group("/suppliers"), NewSupplierHandler(deps.SupplierUC))
	registerRecords(api.Group("/bonuses"), NewBonusHandler(deps.BonusUC))
	registerRecords(api.Group("/losses"), NewLossHandler(deps.LossUC))
	registerRecords(api.Group("/gondolas"), NewGondolaContractHandler(deps.GondolaUC))
	registerRecords(api.Group("/negotiations"), NewNegotiationHandler(deps.NegotiationUC))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Utilidades del formulario
	api.Get("/tools/cnpj", FormatCNPJ)
}

// registerRecords rutas CRUD + exportación. /export va antes de /:id.
func registerRecords(g fiber.Router, h recordHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/export", h.Export)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", RequireConfirmation(), h.Delete)
}
