package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/linkbi-api/docs"
	"github.com/jhoicas/linkbi-api/internal/application/auth"
	"github.com/jhoicas/linkbi-api/internal/application/directory"
	"github.com/jhoicas/linkbi-api/internal/application/media"
	"github.com/jhoicas/linkbi-api/internal/application/ports"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/memory"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/metrics"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/postgres"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/seed"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/linkbi-api/internal/interfaces/http"
	"github.com/jhoicas/linkbi-api/pkg/config"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("store", cfg.DB.Driver).
		Str("media", cfg.Media.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Generated {
		log.Warn().Msg("JWT_SECRET vacío: se usa un secret aleatorio; los tokens caducan al reiniciar")
	}

	ctx := context.Background()

	var (
		providerRepo repository.ProviderRepository
		adminRepo    repository.AdminRepository
	)
	switch cfg.DB.Driver {
	case config.StoreDriverMemory:
		providerRepo = memory.NewProviderRepository()
		adminRepo = memory.NewAdminRepository()
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
	default:
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones PostgreSQL")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		providerRepo = postgres.NewProviderRepository(pool)
		adminRepo = postgres.NewAdminRepository(pool)
	}

	var (
		mediaStore ports.MediaStorage
		uploadDir  string
	)
	switch cfg.Media.Driver {
	case config.MediaDriverS3:
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:        cfg.Media.S3Bucket,
			Region:        cfg.Media.S3Region,
			Endpoint:      cfg.Media.S3Endpoint,
			PublicBaseURL: cfg.Media.PublicBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		mediaStore = s3Store
	default:
		localStore, err := storage.NewLocalStore(cfg.Media.LocalDir, cfg.Media.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento local de fotos")
		}
		mediaStore = localStore
		uploadDir = localStore.Dir()
	}

	m := metrics.New()

	authUC := auth.NewAuthUseCase(adminRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// En memoria no hay cmd/seed: la cuenta admin y la demo se cargan al arrancar.
	if cfg.DB.Driver == config.StoreDriverMemory {
		if cfg.Admin.Email != "" {
			if err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
				log.Fatal().Err(err).Msg("crear cuenta admin")
			}
		}
		if cfg.IsDevelopment() {
			n, err := seed.LoadDemo(ctx, providerRepo)
			if err != nil {
				log.Fatal().Err(err).Msg("datos de demostración")
			}
			log.Info().Int("prestataires", n).Msg("demo cargada")
		}
	}

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		Listing:    directory.NewListingUseCase(providerRepo),
		Submission: directory.NewSubmissionUseCase(providerRepo, m),
		Moderation: directory.NewModerationUseCase(providerRepo, m),
		AuthUC:     authUC,
		Upload:     media.NewUploadUseCase(mediaStore, m),
		JWTSecret:  cfg.JWT.Secret,
		LoginLimit: httpRouter.NewRateLimiter(cfg.HTTP.LoginRatePerMinute),
		Log:        log,
		Metrics:    m.Middleware(),
		UploadDir:  uploadDir,
	})

	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		docs.SwaggerInfo.Title = cfg.App.Name
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "LinkBi API",
		}))
	}

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
