package keysets

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/pkg/validators"
)

// ErrNotFound is returned when no key set has the requested ID.
var ErrNotFound = errors.New("keysets: key set not found")

// KeySet is a named, derived RSA tuple. Integers are kept as decimal strings so that
// arbitrarily large values survive every storage and transport layer.
type KeySet struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	P               string    `validate:"required,integerliteral"`
	Q               string    `validate:"required,integerliteral"`
	N               string    `validate:"required,integerliteral"`
	Phi             string    `validate:"required,integerliteral"`
	E               string    `validate:"required,integerliteral"`
	D               string    `validate:"required,integerliteral"`
	DateTimeCreated time.Time `validate:"required"`
}

// NewKeySet wraps derived parameters in a new KeySet with a fresh ID.
func NewKeySet(name string, params *classical.KeyParameters) *KeySet {
	return &KeySet{
		ID:              uuid.NewString(),
		Name:            name,
		P:               params.P.String(),
		Q:               params.Q.String(),
		N:               params.N.String(),
		Phi:             params.Phi.String(),
		E:               params.E.String(),
		D:               params.D.String(),
		DateTimeCreated: time.Now(),
	}
}

// Validate checks field formats only. Use Parameters to check the arithmetic.
func (k *KeySet) Validate() error {
	return flatten(validators.New().Struct(k))
}

// Parameters re-derives the tuple from p, q and both exponents, failing when the stored
// N, φ(N), e or d no longer agree with each other.
func (k *KeySet) Parameters() (*classical.KeyParameters, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	p, _ := classical.ParseOptionalInteger(k.P)
	q, _ := classical.ParseOptionalInteger(k.Q)
	e, _ := classical.ParseOptionalInteger(k.E)
	d, _ := classical.ParseOptionalInteger(k.D)

	params, err := classical.DeriveParameters(p, q, e, d)
	if err != nil {
		return nil, fmt.Errorf("key set %s: %w", k.ID, err)
	}

	if !sameValue(params.N, k.N) || !sameValue(params.Phi, k.Phi) {
		return nil, fmt.Errorf("%w: key set %s has N=%s, φ(N)=%s but p*q=%s", classical.ErrInconsistentKey, k.ID, k.N, k.Phi, params.N)
	}
	return params, nil
}

func sameValue(v *big.Int, s string) bool {
	parsed, ok := classical.ParseOptionalInteger(s)
	return ok && parsed.Cmp(v) == 0
}

// KeySetQuery filters and pages key set listings.
type KeySetQuery struct {
	Name            string
	DateTimeCreated time.Time
	SortBy          string `validate:"omitempty,oneof=name date_time_created"`
	SortOrder       string `validate:"omitempty,oneof=asc desc"`
	Limit           int    `validate:"min=0"`
	Offset          int    `validate:"min=0"`
}

// NewKeySetQuery returns a query that lists everything, newest first.
func NewKeySetQuery() *KeySetQuery {
	return &KeySetQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeySetQuery struct
func (q *KeySetQuery) Validate() error {
	return flatten(validator.New().Struct(q))
}

func flatten(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
