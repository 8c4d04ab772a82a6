package cryptography

import (
	"fmt"
	"strings"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

type vigenereProcessor struct {
	logger logger.Logger
}

// NewVigenereProcessor creates and returns a new instance of vigenereProcessor
func NewVigenereProcessor(logger logger.Logger) (classical.VigenereProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &vigenereProcessor{logger: logger}, nil
}

// Encrypt applies the cipher over the rotated alphabet of kind
func (v *vigenereProcessor) Encrypt(text, key, rot, kind string) (string, error) {
	return v.apply(text, key, rot, kind, true)
}

// Decrypt reverses Encrypt for the same key, rotation and kind
func (v *vigenereProcessor) Decrypt(text, key, rot, kind string) (string, error) {
	return v.apply(text, key, rot, kind, false)
}

// Trace records the per-character encryption steps
func (v *vigenereProcessor) Trace(text, key, rot, kind string) (*classical.TraceResult, error) {
	alphabet, rotation, err := rotatedAlphabet(rot, kind)
	if err != nil {
		return nil, err
	}

	rows, err := classical.VigenereTrace(composeWithin(text, inUpper(alphabet)), normalizeKey(key, alphabet), alphabet)
	if err != nil {
		v.logger.Warn("Vigenère trace rejected: %v", err)
		return nil, err
	}

	v.logger.Info("Vigenère trace produced %d rows", len(rows))
	return &classical.TraceResult{
		Rotation: rotation,
		Alphabet: alphabet.String(),
		Rows:     rows,
	}, nil
}

func (v *vigenereProcessor) apply(text, key, rot, kind string, encrypt bool) (string, error) {
	alphabet, rotation, err := rotatedAlphabet(rot, kind)
	if err != nil {
		return "", err
	}

	out, err := classical.Vigenere(composeWithin(text, inUpper(alphabet)), normalizeKey(key, alphabet), encrypt, alphabet)
	if err != nil {
		v.logger.Warn("Vigenère key rejected: %v", err)
		return "", err
	}

	v.logger.Info("Vigenère transformation over %s with rotation %d", kind, rotation)
	return out, nil
}

func rotatedAlphabet(rot, kind string) (classical.Alphabet, int, error) {
	upper, _, err := caseClasses(kind)
	if err != nil {
		return classical.Alphabet{}, 0, err
	}
	rotation := classical.VigenereRotation(rot, upper.Len())
	return upper.Rotate(rotation), rotation, nil
}

func normalizeKey(key string, alphabet classical.Alphabet) string {
	return composeWithin(strings.TrimSpace(key), inUpper(alphabet))
}
