package classical

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidInput is returned for malformed or missing required integer or string fields.
	ErrInvalidInput = errors.New("classical: invalid input")

	// ErrNoInverse is returned when a modular inverse is requested but gcd(a, m) != 1.
	ErrNoInverse = errors.New("classical: no modular inverse (gcd != 1)")

	// ErrInconsistentKey is returned when the supplied e and d are not inverses modulo φ(N).
	ErrInconsistentKey = errors.New("classical: e and d are not modular inverses modulo φ(N)")

	// ErrInvalidKey is returned when a Vigenère key is empty or contains characters outside the alphabet.
	ErrInvalidKey = errors.New("classical: invalid key")
)

// OutOfRangeWarning reports that an RSA input was not below N and was reduced modulo N
// before the transform. It is informational, never fatal.
type OutOfRangeWarning struct {
	Original   *big.Int
	Normalized *big.Int
}

func (w *OutOfRangeWarning) String() string {
	return fmt.Sprintf("value normalized modulo N (%s → %s)", w.Original, w.Normalized)
}
