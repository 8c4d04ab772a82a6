package cryptography

import (
	"fmt"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

type polybiusProcessor struct {
	logger  logger.Logger
	squares map[string]*classical.PolybiusSquare
	accepts map[string]func(rune) bool
}

// NewPolybiusProcessor creates a processor with one square per alphabet kind
func NewPolybiusProcessor(logger logger.Logger) (classical.PolybiusProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	squares := make(map[string]*classical.PolybiusSquare)
	accepts := make(map[string]func(rune) bool)
	for _, kind := range []string{classical.AlphabetEnglish, classical.AlphabetUkrainian} {
		alphabet, _ := classical.PolybiusAlphabet(kind)
		squares[kind] = classical.NewPolybiusSquare(alphabet)
		accepts[kind] = inUpper(classical.MustAlphabet(classical.Dedup(alphabet)))
	}

	return &polybiusProcessor{logger: logger, squares: squares, accepts: accepts}, nil
}

// Encode replaces each mapped character with its coordinate token
func (p *polybiusProcessor) Encode(text, kind string) (string, error) {
	square, err := p.square(kind)
	if err != nil {
		return "", err
	}
	out := square.Encode(composeWithin(text, p.accepts[kind]))
	p.logger.Info("Polybius encoding over %dx%d square", square.Size(), square.Size())
	return out, nil
}

// Decode maps whitespace separated tokens back to characters
func (p *polybiusProcessor) Decode(tokens, kind string) (string, error) {
	square, err := p.square(kind)
	if err != nil {
		return "", err
	}
	out := square.Decode(tokens)
	p.logger.Info("Polybius decoding over %dx%d square", square.Size(), square.Size())
	return out, nil
}

func (p *polybiusProcessor) square(kind string) (*classical.PolybiusSquare, error) {
	square, ok := p.squares[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown alphabet %q", classical.ErrInvalidInput, kind)
	}
	return square, nil
}
