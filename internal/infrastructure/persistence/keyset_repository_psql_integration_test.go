//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
)

// Requires a local PostgreSQL instance reachable with user postgres/postgres on port 5432.
func TestKeySetPsqlRepository_CRUD(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	keySet := CreateTestKeySet(t, "textbook")
	require.NoError(t, ctx.KeySetRepo.Create(context.Background(), keySet))

	fetched, err := ctx.KeySetRepo.GetByID(context.Background(), keySet.ID)
	require.NoError(t, err)
	assert.Equal(t, keySet.Phi, fetched.Phi)

	list, err := ctx.KeySetRepo.List(context.Background(), keysets.NewKeySetQuery())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, ctx.KeySetRepo.DeleteByID(context.Background(), keySet.ID))
	_, err = ctx.KeySetRepo.GetByID(context.Background(), keySet.ID)
	assert.ErrorIs(t, err, keysets.ErrNotFound)
}
