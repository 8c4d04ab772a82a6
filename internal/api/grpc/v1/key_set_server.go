package v1

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// keySetServer handles gRPC requests for stored RSA key sets
type keySetServer struct {
	keySetService keysets.KeySetService
}

// NewKeySetServer creates a new instance of the KeySets service.
func NewKeySetServer(keySetService keysets.KeySetService) (KeySetServer, error) {
	if keySetService == nil {
		return nil, errors.New("key set service is required")
	}
	return &keySetServer{keySetService: keySetService}, nil
}

// Create derives and stores a key set
func (s *keySetServer) Create(ctx context.Context, req *CreateKeySetRequest) (*KeySetResponse, error) {
	keySet, err := s.keySetService.Create(ctx, req.Name, req.P, req.Q, req.E, req.D)
	if err != nil {
		return nil, toStatus(err)
	}
	return newKeySetResponse(keySet), nil
}

// List returns one page of key sets
func (s *keySetServer) List(ctx context.Context, req *ListKeySetsRequest) (*ListKeySetsResponse, error) {
	query := keysets.NewKeySetQuery()
	query.Name = req.Name
	query.DateTimeCreated = req.DateTimeCreated
	query.Limit = req.Limit
	query.Offset = req.Offset
	if req.SortBy != "" {
		query.SortBy = req.SortBy
	}
	if req.SortOrder != "" {
		query.SortOrder = req.SortOrder
	}
	if err := query.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	list, err := s.keySetService.List(ctx, query)
	if err != nil {
		return nil, toStatus(err)
	}

	response := &ListKeySetsResponse{KeySets: []*KeySetResponse{}}
	for _, keySet := range list {
		response.KeySets = append(response.KeySets, newKeySetResponse(keySet))
	}
	return response, nil
}

// GetByID retrieves a key set
func (s *keySetServer) GetByID(ctx context.Context, req *KeySetIDRequest) (*KeySetResponse, error) {
	keySet, err := s.keySetService.GetByID(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return newKeySetResponse(keySet), nil
}

// DeleteByID removes a key set
func (s *keySetServer) DeleteByID(ctx context.Context, req *KeySetIDRequest) (*DeleteKeySetResponse, error) {
	if err := s.keySetService.DeleteByID(ctx, req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &DeleteKeySetResponse{Message: "deleted key set " + req.ID}, nil
}

// Encrypt computes Value^e mod N with a stored key set
func (s *keySetServer) Encrypt(ctx context.Context, req *KeySetTransformRequest) (*RSATransformResponse, error) {
	result, err := s.keySetService.Encrypt(ctx, req.ID, req.Value)
	if err != nil {
		return nil, toStatus(err)
	}
	return transformResponse(result), nil
}

// Decrypt computes Value^d mod N with a stored key set
func (s *keySetServer) Decrypt(ctx context.Context, req *KeySetTransformRequest) (*RSATransformResponse, error) {
	result, err := s.keySetService.Decrypt(ctx, req.ID, req.Value)
	if err != nil {
		return nil, toStatus(err)
	}
	return transformResponse(result), nil
}

func newKeySetResponse(keySet *keysets.KeySet) *KeySetResponse {
	return &KeySetResponse{
		ID:              keySet.ID,
		Name:            keySet.Name,
		P:               keySet.P,
		Q:               keySet.Q,
		N:               keySet.N,
		Phi:             keySet.Phi,
		E:               keySet.E,
		D:               keySet.D,
		DateTimeCreated: keySet.DateTimeCreated,
	}
}
