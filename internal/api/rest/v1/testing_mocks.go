package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// MockKeySetService is a testify mock of keysets.KeySetService
type MockKeySetService struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockKeySetService) Create(ctx context.Context, name, p, q, e, d string) (*keysets.KeySet, error) {
	args := m.Called(ctx, name, p, q, e, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysets.KeySet), args.Error(1)
}

// List mocks the List method
func (m *MockKeySetService) List(ctx context.Context, query *keysets.KeySetQuery) ([]*keysets.KeySet, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keysets.KeySet), args.Error(1)
}

// GetByID mocks the GetByID method
func (m *MockKeySetService) GetByID(ctx context.Context, keySetID string) (*keysets.KeySet, error) {
	args := m.Called(ctx, keySetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysets.KeySet), args.Error(1)
}

// DeleteByID mocks the DeleteByID method
func (m *MockKeySetService) DeleteByID(ctx context.Context, keySetID string) error {
	args := m.Called(ctx, keySetID)
	return args.Error(0)
}

// Encrypt mocks the Encrypt method
func (m *MockKeySetService) Encrypt(ctx context.Context, keySetID, message string) (*classical.Transformation, error) {
	args := m.Called(ctx, keySetID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classical.Transformation), args.Error(1)
}

// Decrypt mocks the Decrypt method
func (m *MockKeySetService) Decrypt(ctx context.Context, keySetID, ciphertext string) (*classical.Transformation, error) {
	args := m.Called(ctx, keySetID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classical.Transformation), args.Error(1)
}
