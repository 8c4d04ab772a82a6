// Package main is the entry point for the cryptology-grpc-api application.
// It serves the cryptology.v1.Cipher and cryptology.v1.KeySets services over gRPC with a JSON wire codec.
package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	v1 "github.com/QmFkLVBp/cryptology/internal/api/grpc/v1"
	"github.com/QmFkLVBp/cryptology/internal/app"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/cryptography"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/persistence"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
	"gorm.io/gorm"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")

	grpcConfig, err := config.InitializeGrpcConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&grpcConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(grpcConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(grpcConfig, deps, log)
}

// serverDependencies holds the database and both gRPC service implementations
type serverDependencies struct {
	db           *gorm.DB
	cipherServer v1.CipherServer
	keySetServer v1.KeySetServer
}

// initializeDependencies opens the key set store and builds the gRPC services on top of it
func initializeDependencies(cfg *config.GrpcConfig, log logger.Logger) (*serverDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return wireDependencies(db, log)
}

// wireDependencies builds the services on top of db. It closes db when any of them fails.
func wireDependencies(db *gorm.DB, log logger.Logger) (deps *serverDependencies, err error) {
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

	cipherServer, err := v1.NewCipherServer(engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher server: %w", err)
	}

	keySetServer, err := v1.NewKeySetServer(keySetService)
	if err != nil {
		return nil, fmt.Errorf("failed to create key set server: %w", err)
	}

	log.Info("Database migrated, cipher and key set services initialized successfully")
	return &serverDependencies{
		db:           db,
		cipherServer: cipherServer,
		keySetServer: keySetServer,
	}, nil
}

// startServerWithGracefulShutdown serves gRPC until SIGINT or SIGTERM
func startServerWithGracefulShutdown(cfg *config.GrpcConfig, deps *serverDependencies, log logger.Logger) error {
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(v1.LoggingInterceptor(log)))

	v1.RegisterCipherServer(grpcServer, deps.cipherServer)
	v1.RegisterKeySetServer(grpcServer, deps.keySetServer)

	// Lists services for grpcurl; messages travel as JSON so descriptors are not served
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	grpcErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting on port ", cfg.Port)
		if err := grpcServer.Serve(lis); err != nil {
			grpcErrors <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-grpcErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	log.Info("Shutting down server...")
	grpcServer.GracefulStop()

	log.Info("Server stopped gracefully")
	return nil
}
