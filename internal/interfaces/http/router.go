package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/funeraria-api/internal/application/auth"
	"github.com/jhoicas/funeraria-api/internal/application/cases"
	"github.com/jhoicas/funeraria-api/internal/application/quotes"
	"github.com/jhoicas/funeraria-api/internal/application/schedule"
	"github.com/jhoicas/funeraria-api/internal/application/usecase"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProviderUC  *usecase.ProviderUseCase
	StaffUC     *usecase.StaffUseCase
	CaseUC      *cases.CaseUseCase
	CreateQuote *quotes.CreateQuoteUseCase
	QuotePDF    *quotes.PDFUseCase
	SaveShift   *schedule.SaveShiftUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Casos: el ingreso de una familia es público; la gestión es protegida
	caseHandler := NewCaseHandler(deps.CaseUC)
	api.Post("/cases", caseHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	casesGroup := protected.Group("/cases")
	casesGroup.Get("/", caseHandler.List)
	casesGroup.Patch("/:id/status", caseHandler.UpdateStatus)

	// Perfil de la funeraria (la edición es solo admin)
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/me", providerHandler.GetMe)
	providers.Put("/me", RequireRole(entity.RoleAdmin), providerHandler.UpdateMe)

	// Personal
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Delete("/:id", RequireRole(entity.RoleAdmin), staffHandler.Delete)

	// Turnos
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.SaveShift)
	shifts.Post("/", shiftHandler.Save)
	shifts.Get("/", shiftHandler.List)
	shifts.Delete("/:id", shiftHandler.Delete)

	// Cotizaciones (incluye descarga PDF e imagen)
	quotesGroup := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.CreateQuote, deps.QuotePDF)
	quotesGroup.Post("/", quoteHandler.Create)
	quotesGroup.Get("/", quoteHandler.List)
	quotesGroup.Get("/:id", quoteHandler.GetByID)
	quotesGroup.Get("/:id/pdf", quoteHandler.DownloadPDF)
	quotesGroup.Get("/:id/image", quoteHandler.DownloadImage)
	quotesGroup.Patch("/:id/status", quoteHandler.UpdateStatus)
}
