package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/pkg/validators"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents a plain status message
type InfoResponse struct {
	Message string `json:"message"`
}

// RSAParametersRequest carries raw p, q and at least one exponent
type RSAParametersRequest struct {
	P string `json:"p" validate:"required,integerliteral"`
	Q string `json:"q" validate:"required,integerliteral"`
	E string `json:"e"`
	D string `json:"d"`
}

// Validate for validating RSAParametersRequest struct
func (r *RSAParametersRequest) Validate() error {
	return validateStruct(r)
}

// RSAParametersResponse is the derived tuple plus its printable report
type RSAParametersResponse struct {
	P      string `json:"p"`
	Q      string `json:"q"`
	N      string `json:"n"`
	Phi    string `json:"phi"`
	E      string `json:"e"`
	D      string `json:"d"`
	Report string `json:"report"`
}

// RSAEncryptRequest carries the public half of a tuple and a message
type RSAEncryptRequest struct {
	P       string `json:"p" validate:"required,integerliteral"`
	Q       string `json:"q" validate:"required,integerliteral"`
	E       string `json:"e" validate:"required,integerliteral"`
	Message string `json:"message" validate:"required,integerliteral"`
}

// Validate for validating RSAEncryptRequest struct
func (r *RSAEncryptRequest) Validate() error {
	return validateStruct(r)
}

// RSADecryptRequest carries the private exponent, the modulus factors and a ciphertext
type RSADecryptRequest struct {
	P          string `json:"p" validate:"required,integerliteral"`
	Q          string `json:"q" validate:"required,integerliteral"`
	D          string `json:"d" validate:"required,integerliteral"`
	Ciphertext string `json:"ciphertext" validate:"required,integerliteral"`
}

// Validate for validating RSADecryptRequest struct
func (r *RSADecryptRequest) Validate() error {
	return validateStruct(r)
}

// RangeWarningResponse reports an input reduced modulo N
type RangeWarningResponse struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Message    string `json:"message"`
}

// RSATransformResponse is the outcome of an RSA encryption or decryption
type RSATransformResponse struct {
	Input   string                `json:"input"`
	Output  string                `json:"output"`
	Warning *RangeWarningResponse `json:"warning,omitempty"`
}

// CaesarRequest carries text, a permissive shift and the alphabet kind
type CaesarRequest struct {
	Text     string `json:"text"`
	Shift    string `json:"shift"`
	Alphabet string `json:"alphabet" validate:"alphabetkind"`
}

// Validate for validating CaesarRequest struct
func (r *CaesarRequest) Validate() error {
	r.Alphabet = defaultAlphabet(r.Alphabet)
	return validateStruct(r)
}

// VigenereRequest carries text, key, a permissive rotation and the alphabet kind
type VigenereRequest struct {
	Text     string `json:"text"`
	Key      string `json:"key" validate:"required"`
	Rot      string `json:"rot"`
	Alphabet string `json:"alphabet" validate:"alphabetkind"`
}

// Validate for validating VigenereRequest struct
func (r *VigenereRequest) Validate() error {
	r.Alphabet = defaultAlphabet(r.Alphabet)
	return validateStruct(r)
}

// PolybiusRequest carries plain text or whitespace separated tokens
type PolybiusRequest struct {
	Text     string `json:"text"`
	Alphabet string `json:"alphabet" validate:"alphabetkind"`
}

// Validate for validating PolybiusRequest struct
func (r *PolybiusRequest) Validate() error {
	r.Alphabet = defaultAlphabet(r.Alphabet)
	return validateStruct(r)
}

// TextResponse wraps the output of a text cipher
type TextResponse struct {
	Result string `json:"result"`
}

// VigenereTraceResponse is the per-character trace, also rendered as TSV
type VigenereTraceResponse struct {
	Rotation int                   `json:"rotation"`
	Alphabet string                `json:"alphabet"`
	Rows     []classical.StepTrace `json:"rows"`
	TSV      string                `json:"tsv"`
}

// CreateKeySetRequest carries the name and raw parameters of a key set to store
type CreateKeySetRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	P    string `json:"p" validate:"required,integerliteral"`
	Q    string `json:"q" validate:"required,integerliteral"`
	E    string `json:"e"`
	D    string `json:"d"`
}

// Validate for validating CreateKeySetRequest struct
func (r *CreateKeySetRequest) Validate() error {
	return validateStruct(r)
}

// KeySetTransformRequest carries a message or ciphertext for a stored key set
type KeySetTransformRequest struct {
	Value string `json:"value" validate:"required,integerliteral"`
}

// Validate for validating KeySetTransformRequest struct
func (r *KeySetTransformRequest) Validate() error {
	return validateStruct(r)
}

// KeySetResponse represents a stored key set
type KeySetResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	P               string    `json:"p"`
	Q               string    `json:"q"`
	N               string    `json:"n"`
	Phi             string    `json:"phi"`
	E               string    `json:"e"`
	D               string    `json:"d"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newKeySetResponse(k *keysets.KeySet) KeySetResponse {
	return KeySetResponse{
		ID:              k.ID,
		Name:            k.Name,
		P:               k.P,
		Q:               k.Q,
		N:               k.N,
		Phi:             k.Phi,
		E:               k.E,
		D:               k.D,
		DateTimeCreated: k.DateTimeCreated,
	}
}

func newRSAParametersResponse(p *classical.KeyParameters) RSAParametersResponse {
	return RSAParametersResponse{
		P:      p.P.String(),
		Q:      p.Q.String(),
		N:      p.N.String(),
		Phi:    p.Phi.String(),
		E:      p.E.String(),
		D:      p.D.String(),
		Report: p.Report(),
	}
}

func newRSATransformResponse(t *classical.Transformation) RSATransformResponse {
	response := RSATransformResponse{
		Input:  t.Input.String(),
		Output: t.Output.String(),
	}
	if t.Warning != nil {
		response.Warning = &RangeWarningResponse{
			Original:   t.Warning.Original.String(),
			Normalized: t.Warning.Normalized.String(),
			Message:    t.Warning.String(),
		}
	}
	return response
}

func defaultAlphabet(kind string) string {
	if kind == "" {
		return classical.AlphabetEnglish
	}
	return kind
}

var requestValidator = validators.New()

func validateStruct(s interface{}) error {
	err := requestValidator.Struct(s)
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
