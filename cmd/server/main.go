// Command server runs the Q&A HTTP API.
//
// Startup order: env file, config, logging, store selection (Postgres,
// SQLite, or in-memory), migrations and optional seeding, tracing, router,
// then an http.Server with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	_ "github.com/kpapad/go-qa-backend/docs"
	"github.com/kpapad/go-qa-backend/internal/config"
	httpapi "github.com/kpapad/go-qa-backend/internal/http"
	"github.com/kpapad/go-qa-backend/internal/observability"
	"github.com/kpapad/go-qa-backend/internal/repo"
	"github.com/kpapad/go-qa-backend/internal/store/gormstore"
	"github.com/kpapad/go-qa-backend/internal/store/memstore"
	"github.com/kpapad/go-qa-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title           Q&A Service API
// @version         1.0
// @description     A small question-and-answer web service: questions with
// @description     tags, answers referencing questions, and account
// @description     registration with argon2id password hashing.
// @BasePath        /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogging(cfg.LogLevel, cfg.LogPretty)

	log.Info().Str("version", version).Str("gin_mode", cfg.GinMode).Msg("starting qa-backend")

	st, db, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}

	// Tracing (no-op shutdown when disabled)
	shutdownOTel, err := observability.SetupOTel(context.Background(), cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel init failed")
	}
	if db != nil && cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("gorm tracing unavailable")
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, st, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop, cancelSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancelSignals()
	<-stop.Done()
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := shutdownOTel(ctx); err != nil {
		log.Warn().Err(err).Msg("otel shutdown failed")
	}
}

// openStore selects the persistence backend from config. DATABASE_URL wins;
// otherwise DB_PATH is a SQLite file, with the special value "memory"
// selecting the in-process store. The returned *gorm.DB is nil for the
// in-memory store.
func openStore(cfg config.Config) (httpapi.Store, *gorm.DB, error) {
	if cfg.DatabaseURL == "" && cfg.DBPath == "memory" {
		log.Info().Msg("using in-memory store")
		return memstore.New(), nil, nil
	}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = repo.OpenPostgres(cfg.DatabaseURL)
		log.Info().Msg("using postgres store")
	} else {
		db, err = repo.OpenSQLite(cfg.DBPath)
		log.Info().Str("path", cfg.DBPath).Msg("using sqlite store")
	}
	if err != nil {
		return nil, nil, err
	}
	if err := repo.AutoMigrate(db); err != nil {
		return nil, nil, err
	}

	if cfg.SeedPath != "" {
		n, err := repo.SeedQuestions(context.Background(), db, cfg.SeedPath)
		if err != nil {
			return nil, nil, err
		}
		if n > 0 {
			log.Info().Int("questions", n).Str("path", cfg.SeedPath).Msg("seeded questions")
		}
	}

	return gormstore.New(db), db, nil
}
