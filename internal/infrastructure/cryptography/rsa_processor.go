package cryptography

import (
	"fmt"
	"math/big"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (classical.RSAProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// DeriveParameters parses the raw fields and derives the complete key tuple
func (r *rsaProcessor) DeriveParameters(p, q, e, d string) (*classical.KeyParameters, error) {
	pv, err := classical.ParseInteger(p, "p")
	if err != nil {
		return nil, err
	}
	qv, err := classical.ParseInteger(q, "q")
	if err != nil {
		return nil, err
	}

	ev, _ := classical.ParseOptionalInteger(e)
	dv, _ := classical.ParseOptionalInteger(d)

	params, err := classical.DeriveParameters(pv, qv, ev, dv)
	if err != nil {
		r.logger.Warn("RSA parameter derivation failed: %v", err)
		return nil, err
	}

	r.logger.Info("Derived RSA parameters for N=%s", params.N.String())
	return params, nil
}

// Encrypt computes message^e mod p*q
func (r *rsaProcessor) Encrypt(p, q, e, message string) (*classical.Transformation, error) {
	n, err := modulus(p, q)
	if err != nil {
		return nil, err
	}
	ev, err := classical.ParseInteger(e, "e")
	if err != nil {
		return nil, err
	}
	m, err := classical.ParseInteger(message, "message")
	if err != nil {
		return nil, err
	}

	return r.encrypt(m, ev, n)
}

// Decrypt computes ciphertext^d mod p*q
func (r *rsaProcessor) Decrypt(p, q, d, ciphertext string) (*classical.Transformation, error) {
	n, err := modulus(p, q)
	if err != nil {
		return nil, err
	}
	dv, err := classical.ParseInteger(d, "d")
	if err != nil {
		return nil, err
	}
	c, err := classical.ParseInteger(ciphertext, "ciphertext")
	if err != nil {
		return nil, err
	}

	return r.decrypt(c, dv, n)
}

// EncryptWithKey encrypts with a previously derived tuple
func (r *rsaProcessor) EncryptWithKey(params *classical.KeyParameters, message *big.Int) (*classical.Transformation, error) {
	if params == nil || message == nil {
		return nil, fmt.Errorf("%w: key parameters and message are required", classical.ErrInvalidInput)
	}
	return r.encrypt(message, params.E, params.N)
}

// DecryptWithKey decrypts with a previously derived tuple
func (r *rsaProcessor) DecryptWithKey(params *classical.KeyParameters, ciphertext *big.Int) (*classical.Transformation, error) {
	if params == nil || ciphertext == nil {
		return nil, fmt.Errorf("%w: key parameters and ciphertext are required", classical.ErrInvalidInput)
	}
	return r.decrypt(ciphertext, params.D, params.N)
}

func (r *rsaProcessor) encrypt(m, e, n *big.Int) (*classical.Transformation, error) {
	result, err := classical.Encrypt(m, e, n)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}
	r.report(result)
	r.logger.Info("RSA encryption succeeded")
	return result, nil
}

func (r *rsaProcessor) decrypt(c, d, n *big.Int) (*classical.Transformation, error) {
	result, err := classical.Decrypt(c, d, n)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}
	r.report(result)
	r.logger.Info("RSA decryption succeeded")
	return result, nil
}

func (r *rsaProcessor) report(t *classical.Transformation) {
	if t.Warning != nil {
		r.logger.Warn(t.Warning.String())
	}
}

func modulus(p, q string) (*big.Int, error) {
	pv, err := classical.ParseInteger(p, "p")
	if err != nil {
		return nil, err
	}
	qv, err := classical.ParseInteger(q, "q")
	if err != nil {
		return nil, err
	}
	if pv.Cmp(big.NewInt(1)) <= 0 || qv.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: p,q must be > 1", classical.ErrInvalidInput)
	}
	return new(big.Int).Mul(pv, qv), nil
}
