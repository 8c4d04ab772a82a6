package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

// keySetService implements the KeySetService interface
type keySetService struct {
	keySetRepo   keysets.KeySetRepository
	rsaProcessor classical.RSAProcessor
	logger       logger.Logger
}

// NewKeySetService creates a new keySetService instance
func NewKeySetService(keySetRepo keysets.KeySetRepository, rsaProcessor classical.RSAProcessor, logger logger.Logger) (keysets.KeySetService, error) {
	if keySetRepo == nil || rsaProcessor == nil || logger == nil {
		return nil, fmt.Errorf("repository, RSA processor and logger are required")
	}
	return &keySetService{
		keySetRepo:   keySetRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Create derives the tuple and stores it
func (s *keySetService) Create(ctx context.Context, name, p, q, e, d string) (*keysets.KeySet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", classical.ErrInvalidInput)
	}

	params, err := s.rsaProcessor.DeriveParameters(p, q, e, d)
	if err != nil {
		return nil, err
	}

	keySet := keysets.NewKeySet(name, params)
	if err := s.keySetRepo.Create(ctx, keySet); err != nil {
		return nil, fmt.Errorf("failed to store key set: %w", err)
	}

	s.logger.Info("Stored key set %s (%s) with N=%s", keySet.ID, keySet.Name, keySet.N)
	return keySet, nil
}

// List retrieves key sets matching query
func (s *keySetService) List(ctx context.Context, query *keysets.KeySetQuery) ([]*keysets.KeySet, error) {
	list, err := s.keySetRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key sets: %w", err)
	}
	return list, nil
}

// GetByID retrieves a key set by ID
func (s *keySetService) GetByID(ctx context.Context, keySetID string) (*keysets.KeySet, error) {
	keySet, err := s.keySetRepo.GetByID(ctx, keySetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key set: %w", err)
	}
	return keySet, nil
}

// DeleteByID deletes a key set by ID
func (s *keySetService) DeleteByID(ctx context.Context, keySetID string) error {
	if err := s.keySetRepo.DeleteByID(ctx, keySetID); err != nil {
		return fmt.Errorf("failed to delete key set: %w", err)
	}
	s.logger.Info("Deleted key set ", keySetID)
	return nil
}

// Encrypt encrypts message with the stored public exponent
func (s *keySetService) Encrypt(ctx context.Context, keySetID, message string) (*classical.Transformation, error) {
	params, err := s.load(ctx, keySetID)
	if err != nil {
		return nil, err
	}
	m, err := classical.ParseInteger(message, "message")
	if err != nil {
		return nil, err
	}
	return s.rsaProcessor.EncryptWithKey(params, m)
}

// Decrypt decrypts ciphertext with the stored private exponent
func (s *keySetService) Decrypt(ctx context.Context, keySetID, ciphertext string) (*classical.Transformation, error) {
	params, err := s.load(ctx, keySetID)
	if err != nil {
		return nil, err
	}
	c, err := classical.ParseInteger(ciphertext, "ciphertext")
	if err != nil {
		return nil, err
	}
	return s.rsaProcessor.DecryptWithKey(params, c)
}

func (s *keySetService) load(ctx context.Context, keySetID string) (*classical.KeyParameters, error) {
	keySet, err := s.keySetRepo.GetByID(ctx, keySetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key set: %w", err)
	}
	params, err := keySet.Parameters()
	if err != nil {
		s.logger.Error("Stored key set %s is inconsistent: %v", keySetID, err)
		return nil, err
	}
	return params, nil
}
