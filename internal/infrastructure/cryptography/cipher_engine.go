package cryptography

import (
	"fmt"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

type cipherEngine struct {
	rsa      classical.RSAProcessor
	caesar   classical.CaesarProcessor
	vigenere classical.VigenereProcessor
	polybius classical.PolybiusProcessor
}

// NewCipherEngine wires every processor around a shared logger
func NewCipherEngine(logger logger.Logger) (classical.CipherEngine, error) {
	rsaProcessor, err := NewRSAProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	caesarProcessor, err := NewCaesarProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Caesar processor: %w", err)
	}
	vigenereProcessor, err := NewVigenereProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vigenère processor: %w", err)
	}
	polybiusProcessor, err := NewPolybiusProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Polybius processor: %w", err)
	}

	return &cipherEngine{
		rsa:      rsaProcessor,
		caesar:   caesarProcessor,
		vigenere: vigenereProcessor,
		polybius: polybiusProcessor,
	}, nil
}

func (e *cipherEngine) RSA() classical.RSAProcessor           { return e.rsa }
func (e *cipherEngine) Caesar() classical.CaesarProcessor     { return e.caesar }
func (e *cipherEngine) Vigenere() classical.VigenereProcessor { return e.vigenere }
func (e *cipherEngine) Polybius() classical.PolybiusProcessor { return e.polybius }
