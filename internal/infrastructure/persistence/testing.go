//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
	"github.com/QmFkLVBp/cryptology/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	KeySetRepo keysets.KeySetRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		serverDSN := os.Getenv("CRYPTOLOGY_TEST_POSTGRES_DSN")
		if serverDSN == "" {
			serverDSN = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  serverDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(serverDSN+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	keySetRepo, err := NewGormKeySetRepository(db, logger)
	require.NoError(t, err, "Failed to create key set repository")

	return &TestContext{
		DB:         db,
		KeySetRepo: keySetRepo,
	}
}

// CreateTestKeySet creates the textbook p=61, q=53, e=17 key set
func CreateTestKeySet(t *testing.T, name string) *keysets.KeySet {
	t.Helper()

	return &keysets.KeySet{
		ID:              uuid.NewString(),
		Name:            name,
		P:               "61",
		Q:               "53",
		N:               "3233",
		Phi:             "3120",
		E:               "17",
		D:               "2753",
		DateTimeCreated: time.Now(),
	}
}
