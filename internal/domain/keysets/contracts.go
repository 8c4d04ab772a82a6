package keysets

import (
	"context"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// KeySetRepository defines the persistence operations for key sets
type KeySetRepository interface {
	Create(ctx context.Context, keySet *KeySet) error
	List(ctx context.Context, query *KeySetQuery) ([]*KeySet, error)
	GetByID(ctx context.Context, keySetID string) (*KeySet, error)
	DeleteByID(ctx context.Context, keySetID string) error
}

// KeySetService manages stored key sets and runs RSA operations with them.
type KeySetService interface {
	// Create derives the tuple from raw p, q, e and d values and stores it under name.
	Create(ctx context.Context, name, p, q, e, d string) (*KeySet, error)

	// List retrieves key sets considering a query filter when set.
	List(ctx context.Context, query *KeySetQuery) ([]*KeySet, error)

	// GetByID retrieves a key set by its unique ID.
	GetByID(ctx context.Context, keySetID string) (*KeySet, error)

	// DeleteByID deletes a key set by ID.
	DeleteByID(ctx context.Context, keySetID string) error

	// Encrypt computes message^e mod N with the stored tuple.
	Encrypt(ctx context.Context, keySetID, message string) (*classical.Transformation, error)

	// Decrypt computes ciphertext^d mod N with the stored tuple.
	Decrypt(ctx context.Context, keySetID, ciphertext string) (*classical.Transformation, error)
}
