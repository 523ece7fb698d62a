package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/linkbi-api/internal/application/auth"
	"github.com/jhoicas/linkbi-api/internal/application/directory"
	"github.com/jhoicas/linkbi-api/internal/application/media"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

// BodyLimit deja margen sobre los 10 MB por foto para el sobrecoste multipart.
const BodyLimit = 12 * 1024 * 1024

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Listing    *directory.ListingUseCase
	Submission *directory.SubmissionUseCase
	Moderation *directory.ModerationUseCase
	AuthUC     *auth.AuthUseCase
	Upload     *media.UploadUseCase
	JWTSecret  string
	LoginLimit *RateLimiter
	Log        *logger.Logger

	// Opcionales
	Metrics   fiber.Handler // middleware de métricas HTTP
	UploadDir string        // si no está vacío se sirve en /uploads
}

// NewApp crea la aplicación Fiber con middlewares comunes y todas las rutas.
func NewApp(appName string, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		BodyLimit:    BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics)
	}
	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.LoginLimit == nil {
		deps.LoginLimit = NewRateLimiter(10)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.UploadDir != "" {
		app.Static("/uploads", deps.UploadDir, fiber.Static{MaxAge: 86400, ModifyResponse: uploadHeaders})
	}

	api := app.Group("/api")

	// Annuaire (público)
	providerHandler := NewProviderHandler(deps.Listing, deps.Submission, deps.Log.Named("prestataires"))
	api.Get("/prestataires", providerHandler.List)
	api.Post("/prestataires", providerHandler.Create)
	api.Get("/prestataires/:id", providerHandler.GetByID)

	// Fotos (público, usado por el formulario de inscripción)
	uploadHandler := NewUploadHandler(deps.Upload, deps.Log.Named("upload"))
	api.Post("/upload", uploadHandler.Upload)

	// Login admin con límite por IP
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log.Named("auth"))
	api.Post("/admin/login", deps.LoginLimit.Middleware(), authHandler.Login)

	// Moderación (Bearer + rol admin)
	admin := api.Group("/admin/prestataires", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.Moderation, deps.Log.Named("admin"))
	admin.Get("/", adminHandler.List)
	admin.Patch("/:id", adminHandler.UpdateStatus)
	admin.Delete("/:id", adminHandler.Delete)
}

// uploadHeaders impide que un archivo subido (SVG con scripts) se ejecute en el origen de la API.
func uploadHeaders(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentSecurityPolicy, "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	if strings.HasSuffix(strings.ToLower(c.Path()), ".svg") {
		c.Set(fiber.HeaderContentDisposition, "attachment")
	}
	return nil
}
