// cmd/cryptology-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/QmFkLVBp/cryptology/internal/api/rest/v1"
	"github.com/QmFkLVBp/cryptology/internal/app"
	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/cryptography"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/persistence"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
	"github.com/gin-contrib/cors"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// An unset CONFIG_PATH runs on defaults plus CRYPTOLOGY_* overrides
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db            *gorm.DB
	engine        classical.CipherEngine
	keySetService keysets.KeySetService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return wireDependencies(db, log)
}

// wireDependencies builds the components on top of db. It closes db when any of them fails.
func wireDependencies(db *gorm.DB, log logger.Logger) (deps *appDependencies, err error) {
	defer func() {
		if err != nil {
			if closeErr := persistence.CloseDB(db); closeErr != nil {
				err = errors.Join(err, closeErr)
			}
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	keySetRepo, err := persistence.NewGormKeySetRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key set repository: %w", err)
	}

	engine, err := cryptography.NewCipherEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher engine: %w", err)
	}

	keySetService, err := app.NewKeySetService(keySetRepo, engine.RSA(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key set service: %w", err)
	}

	log.Info("Database migrated, cipher engine and key set service initialized successfully")
	return &appDependencies{
		db:            db,
		engine:        engine,
		keySetService: keySetService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.engine, deps.keySetService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
