package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// MockKeySetRepository is a testify mock of keysets.KeySetRepository
type MockKeySetRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockKeySetRepository) Create(ctx context.Context, keySet *keysets.KeySet) error {
	args := m.Called(ctx, keySet)
	return args.Error(0)
}

// List mocks the List method
func (m *MockKeySetRepository) List(ctx context.Context, query *keysets.KeySetQuery) ([]*keysets.KeySet, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keysets.KeySet), args.Error(1)
}

// GetByID mocks the GetByID method
func (m *MockKeySetRepository) GetByID(ctx context.Context, keySetID string) (*keysets.KeySet, error) {
	args := m.Called(ctx, keySetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysets.KeySet), args.Error(1)
}

// DeleteByID mocks the DeleteByID method
func (m *MockKeySetRepository) DeleteByID(ctx context.Context, keySetID string) error {
	args := m.Called(ctx, keySetID)
	return args.Error(0)
}
