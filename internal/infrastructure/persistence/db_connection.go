package persistence

import (
	"fmt"
	"strings"

	"github.com/QmFkLVBp/cryptology/internal/infrastructure/persistence/models"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteMemoryDSN = ":memory:"

// NewDBConnection opens the key set store described by settings
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if settings.Type == config.PostgresDbType {
		return connectPostgres(settings)
	}
	return connectSQLite(settings.DSN)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}

// connectPostgres creates settings.Name on the server when missing, then connects to it
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	admin, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	var existing int64
	err = admin.Raw("SELECT count(*) FROM pg_database WHERE datname = ?", settings.Name).Scan(&existing).Error
	if err == nil && existing == 0 {
		err = admin.Exec("CREATE DATABASE " + quoteIdentifier(settings.Name)).Error
	}
	if closeErr := CloseDB(admin); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to prepare database '%s': %w", settings.Name, err)
	}

	db, err := gorm.Open(postgres.Open(settings.DSN+" dbname="+settings.Name), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

func connectSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// each pooled connection to :memory: would see its own empty database
	if dsn == sqliteMemoryDSN {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the key set schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KeySetModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB releases the pool behind db
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase removes a PostgreSQL database, used to clean up after integration tests
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	err = db.Exec("DROP DATABASE IF EXISTS " + quoteIdentifier(dbName)).Error
	if closeErr := CloseDB(db); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
