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

	appanalytics "github.com/jhoicas/gestao-fornecedores/internal/application/analytics"
	"github.com/jhoicas/gestao-fornecedores/internal/application/usecase"
	infracsv "github.com/jhoicas/gestao-fornecedores/internal/infrastructure/csv"
	"github.com/jhoicas/gestao-fornecedores/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gestao-fornecedores/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/gestao-fornecedores/internal/interfaces/http"
	"github.com/jhoicas/gestao-fornecedores/pkg/config"
	"github.com/jhoicas/gestao-fornecedores/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Colecciones en memoria; sin persistencia entre reinicios.
	store := memory.NewStore()
	if cfg.Store.SeedDemo {
		store = memory.NewDemoStore()
		log.Info().Int("suppliers", store.Suppliers.Len()).Msg("datos de demostración cargados")
	}

	// Exportación: CSV (planillas) y PDF (listado imprimible)
	exporter := usecase.NewExporter(
		infracsv.NewWriter(),
		infrapdf.NewReportGenerator(cfg.Export.PDFAuthor),
	)

	ucLog := log.Component("usecase")
	supplierUC := usecase.NewSupplierUseCase(store.Suppliers, exporter, ucLog)
	bonusUC := usecase.NewBonusUseCase(store.Bonuses, exporter, ucLog)
	lossUC := usecase.NewLossUseCase(store.Losses, exporter, ucLog)
	gondolaUC := usecase.NewGondolaContractUseCase(store.Gondolas, exporter, ucLog)
	negotiationUC := usecase.NewNegotiationUseCase(store.Negotiations, exporter, ucLog)
	dashboardUC := appanalytics.NewDashboardUseCase(
		store.Suppliers, store.Bonuses, store.Losses, store.Gondolas, store.Negotiations,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerPath,
			Path:     "docs",
			Title:    "Gestão de Fornecedores API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC:    supplierUC,
		BonusUC:       bonusUC,
		LossUC:        lossUC,
		GondolaUC:     gondolaUC,
		NegotiationUC: negotiationUC,
		DashboardUC:   dashboardUC,
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
