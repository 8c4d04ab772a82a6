package cryptography

import (
	"fmt"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

type caesarProcessor struct {
	logger logger.Logger
}

// NewCaesarProcessor creates and returns a new instance of caesarProcessor
func NewCaesarProcessor(logger logger.Logger) (classical.CaesarProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &caesarProcessor{logger: logger}, nil
}

// Encrypt shifts every letter of the alphabet kind forward by shift
func (c *caesarProcessor) Encrypt(text, shift, kind string) (string, error) {
	return c.apply(text, shift, kind, 1)
}

// Decrypt shifts every letter of the alphabet kind backward by shift
func (c *caesarProcessor) Decrypt(text, shift, kind string) (string, error) {
	return c.apply(text, shift, kind, -1)
}

func (c *caesarProcessor) apply(text, shift, kind string, direction int) (string, error) {
	upper, lower, err := caseClasses(kind)
	if err != nil {
		return "", err
	}

	n := upper.Len()
	if !classical.IsIntegerLiteral(shift) {
		c.logger.Debug("Caesar shift %q is not an integer, using 0", shift)
	}
	k := direction * classical.ParseShift(shift, n)

	out := classical.Caesar(composeWithin(text, inClasses(upper, lower)), k, upper, lower)
	c.logger.Info("Caesar transformation over %s with shift %d", kind, k)
	return out, nil
}
