// seed aplica las migraciones, crea o actualiza la cuenta admin y opcionalmente
// inserta las fichas de demostración.
//
// Uso: go run ./cmd/seed [-demo]
// Lee ADMIN_EMAIL y ADMIN_PASSWORD (mínimo 8 caracteres) de la configuración.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/linkbi-api/internal/application/auth"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/postgres"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/seed"
	"github.com/jhoicas/linkbi-api/pkg/config"
	"github.com/jhoicas/linkbi-api/pkg/logger"
)

func main() {
	demo := flag.Bool("demo", false, "insertar las fichas de demostración (statut valide)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	if cfg.DB.Driver != config.StoreDriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("seed requiere STORE_DRIVER=postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.Admin.Email != "" {
		authUC := auth.NewAuthUseCase(postgres.NewAdminRepository(pool), auth.JWTConfig{})
		if err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("cuenta admin")
		}
		log.Info().Str("email", cfg.Admin.Email).Msg("cuenta admin lista")
	} else {
		log.Warn().Msg("ADMIN_EMAIL vacío: no se crea cuenta admin")
	}

	if *demo {
		n, err := seed.LoadDemo(ctx, postgres.NewProviderRepository(pool))
		if err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
		log.Info().Int("prestataires", n).Msg("demo insertada")
	}
}
