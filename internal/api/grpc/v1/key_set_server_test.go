//go:build unit
// +build unit

package v1

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/QmFkLVBp/cryptology/internal/app"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/cryptography"
	"github.com/QmFkLVBp/cryptology/internal/pkg/testutil"
)

func setupKeySetClient(t *testing.T) (*KeySetClient, *app.MockKeySetRepository) {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)
	repo := new(app.MockKeySetRepository)
	service, err := app.NewKeySetService(repo, rsaProcessor, logger)
	require.NoError(t, err)
	server, err := NewKeySetServer(service)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	RegisterKeySetServer(s, server)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewKeySetClient(conn), repo
}

func storedKeySet() *keysets.KeySet {
	return &keysets.KeySet{
		ID:              uuid.NewString(),
		Name:            "textbook",
		P:               "61",
		Q:               "53",
		N:               "3233",
		Phi:             "3120",
		E:               "17",
		D:               "2753",
		DateTimeCreated: time.Now(),
	}
}

func TestKeySetServer_Create(t *testing.T) {
	client, repo := setupKeySetClient(t)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*keysets.KeySet")).Return(nil)

	created, err := client.Create(context.Background(), &CreateKeySetRequest{Name: "textbook", P: "61", Q: "53", E: "17"})
	require.NoError(t, err)
	assert.Equal(t, "textbook", created.Name)
	assert.Equal(t, "3233", created.N)
	assert.Equal(t, "2753", created.D)
	assert.NotEmpty(t, created.ID)
	repo.AssertExpectations(t)

	_, err = client.Create(context.Background(), &CreateKeySetRequest{Name: "broken", P: "61", Q: "53"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestKeySetServer_EncryptDecrypt(t *testing.T) {
	client, repo := setupKeySetClient(t)
	keySet := storedKeySet()
	repo.On("GetByID", mock.Anything, keySet.ID).Return(keySet, nil)

	encrypted, err := client.Encrypt(context.Background(), &KeySetTransformRequest{ID: keySet.ID, Value: "65"})
	require.NoError(t, err)
	assert.Equal(t, "2790", encrypted.Output)

	decrypted, err := client.Decrypt(context.Background(), &KeySetTransformRequest{ID: keySet.ID, Value: encrypted.Output})
	require.NoError(t, err)
	assert.Equal(t, "65", decrypted.Output)
}

func TestKeySetServer_List(t *testing.T) {
	client, repo := setupKeySetClient(t)
	keySet := storedKeySet()
	repo.On("List", mock.Anything, mock.MatchedBy(func(q *keysets.KeySetQuery) bool {
		return q.Name == "textbook" && q.SortBy == "date_time_created" && q.SortOrder == "desc" && q.Limit == 5
	})).Return([]*keysets.KeySet{keySet}, nil)

	list, err := client.List(context.Background(), &ListKeySetsRequest{Name: "textbook", Limit: 5})
	require.NoError(t, err)
	require.Len(t, list.KeySets, 1)
	assert.Equal(t, keySet.ID, list.KeySets[0].ID)

	_, err = client.List(context.Background(), &ListKeySetsRequest{SortBy: "n"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestKeySetServer_NotFound(t *testing.T) {
	client, repo := setupKeySetClient(t)
	missing := uuid.NewString()
	notFound := fmt.Errorf("%w: id %s", keysets.ErrNotFound, missing)
	repo.On("GetByID", mock.Anything, missing).Return(nil, notFound)
	repo.On("DeleteByID", mock.Anything, missing).Return(notFound)

	tests := []struct {
		name string
		call func() error
	}{
		{"get", func() error {
			_, err := client.GetByID(context.Background(), &KeySetIDRequest{ID: missing})
			return err
		}},
		{"delete", func() error {
			_, err := client.DeleteByID(context.Background(), &KeySetIDRequest{ID: missing})
			return err
		}},
		{"encrypt", func() error {
			_, err := client.Encrypt(context.Background(), &KeySetTransformRequest{ID: missing, Value: "65"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, codes.NotFound, status.Code(tt.call()))
		})
	}
}

func TestKeySetServer_DeleteByID(t *testing.T) {
	client, repo := setupKeySetClient(t)
	keySet := storedKeySet()
	repo.On("DeleteByID", mock.Anything, keySet.ID).Return(nil)

	response, err := client.DeleteByID(context.Background(), &KeySetIDRequest{ID: keySet.ID})
	require.NoError(t, err)
	assert.Contains(t, response.Message, keySet.ID)
}

func TestNewKeySetServer_RequiresService(t *testing.T) {
	server, err := NewKeySetServer(nil)
	assert.Error(t, err)
	assert.Nil(t, server)
}
