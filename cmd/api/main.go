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

	"github.com/jhoicas/funeraria-api/internal/application/auth"
	"github.com/jhoicas/funeraria-api/internal/application/cases"
	"github.com/jhoicas/funeraria-api/internal/application/quotes"
	"github.com/jhoicas/funeraria-api/internal/application/schedule"
	"github.com/jhoicas/funeraria-api/internal/application/usecase"
	"github.com/jhoicas/funeraria-api/internal/domain/quote"
	infrapdf "github.com/jhoicas/funeraria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/funeraria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/funeraria-api/internal/infrastructure/raster"
	httpRouter "github.com/jhoicas/funeraria-api/internal/interfaces/http"
	"github.com/jhoicas/funeraria-api/pkg/config"
	"github.com/jhoicas/funeraria-api/pkg/logger"
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

	providerRepo := postgres.NewProviderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	caseRepo := postgres.NewCaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Layout del documento de cotización: geometría A4 fija + formato de moneda
	// desde configuración.
	layoutCfg := quote.DefaultConfig()
	layoutCfg.DefaultTaxPct = int64(cfg.Quote.DefaultTaxPct)
	layoutCfg.FooterPattern = cfg.Quote.FooterPattern
	layoutCfg.Money = quote.MoneyFormat{
		Symbol:       cfg.Quote.CurrencySym,
		ThousandsSep: cfg.Quote.ThousandsSep,
		DecimalSep:   cfg.Quote.DecimalSep,
		Decimals:     cfg.Quote.Decimals,
	}

	pdfRenderer := infrapdf.NewMarotoQuoteRenderer()
	rasterizer := raster.NewFitzRasterizer()

	authUC := auth.NewAuthUseCase(userRepo, providerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	providerUC := usecase.NewProviderUseCase(providerRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	caseUC := cases.NewCaseUseCase(caseRepo, providerRepo)
	createQuoteUC := quotes.NewCreateQuoteUseCase(txRunner, quoteRepo, caseRepo, quotes.Config{
		TaxPct: int64(cfg.Quote.DefaultTaxPct),
	})
	quotePDFUC := quotes.NewPDFUseCase(quoteRepo, providerRepo, pdfRenderer, rasterizer, layoutCfg)
	saveShiftUC := schedule.NewSaveShiftUseCase(shiftRepo, staffRepo, schedule.OverlapPolicy(cfg.Schedule.OverlapPolicy))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la generación del PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Funeraria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProviderUC:  providerUC,
		StaffUC:     staffUC,
		CaseUC:      caseUC,
		CreateQuote: createQuoteUC,
		QuotePDF:    quotePDFUC,
		SaveShift:   saveShiftUC,
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
