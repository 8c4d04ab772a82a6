//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/cryptography"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/persistence"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
	"github.com/QmFkLVBp/cryptology/internal/pkg/testutil"
)

func TestKeySetService_SqliteRoundTrip(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)
	service, err := NewKeySetService(dbContext.KeySetRepo, rsaProcessor, logger)
	require.NoError(t, err)

	ctx := context.Background()
	keySet, err := service.Create(ctx, "textbook", "61", "53", "", "2753")
	require.NoError(t, err)
	assert.Equal(t, "17", keySet.E)

	encrypted, err := service.Encrypt(ctx, keySet.ID, "65")
	require.NoError(t, err)
	decrypted, err := service.Decrypt(ctx, keySet.ID, encrypted.Output.String())
	require.NoError(t, err)
	assert.Equal(t, "65", decrypted.Output.String())

	list, err := service.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, service.DeleteByID(ctx, keySet.ID))
	_, err = service.GetByID(ctx, keySet.ID)
	assert.ErrorIs(t, err, keysets.ErrNotFound)
}
