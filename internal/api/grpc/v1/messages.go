package v1

import (
	"time"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// RSAParametersRequest carries raw p, q and at least one exponent
type RSAParametersRequest struct {
	P string `json:"p"`
	Q string `json:"q"`
	E string `json:"e,omitempty"`
	D string `json:"d,omitempty"`
}

// RSAParametersResponse is the derived tuple
type RSAParametersResponse struct {
	P      string `json:"p"`
	Q      string `json:"q"`
	N      string `json:"n"`
	Phi    string `json:"phi"`
	E      string `json:"e"`
	D      string `json:"d"`
	Report string `json:"report"`
}

// RSAEncryptRequest carries p, q, e and the message
type RSAEncryptRequest struct {
	P       string `json:"p"`
	Q       string `json:"q"`
	E       string `json:"e"`
	Message string `json:"message"`
}

// RSADecryptRequest carries p, q, d and the ciphertext
type RSADecryptRequest struct {
	P          string `json:"p"`
	Q          string `json:"q"`
	D          string `json:"d"`
	Ciphertext string `json:"ciphertext"`
}

// RSATransformResponse is the result of an RSA operation. Warning is set when the input
// was reduced modulo N.
type RSATransformResponse struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Warning string `json:"warning,omitempty"`
}

// CaesarRequest carries text, shift and alphabet kind
type CaesarRequest struct {
	Text     string `json:"text"`
	Shift    string `json:"shift"`
	Alphabet string `json:"alphabet"`
}

// VigenereRequest carries text, key, rotation and alphabet kind
type VigenereRequest struct {
	Text     string `json:"text"`
	Key      string `json:"key"`
	Rot      string `json:"rot"`
	Alphabet string `json:"alphabet"`
}

// PolybiusRequest carries text or tokens and alphabet kind
type PolybiusRequest struct {
	Text     string `json:"text"`
	Alphabet string `json:"alphabet"`
}

// TextResponse wraps the output of a text cipher
type TextResponse struct {
	Result string `json:"result"`
}

// VigenereTraceResponse is the per-character trace
type VigenereTraceResponse struct {
	Rotation int                   `json:"rotation"`
	Alphabet string                `json:"alphabet"`
	Rows     []classical.StepTrace `json:"rows"`
	TSV      string                `json:"tsv"`
}

// CreateKeySetRequest carries the name and raw parameters of a key set to store
type CreateKeySetRequest struct {
	Name string `json:"name"`
	P    string `json:"p"`
	Q    string `json:"q"`
	E    string `json:"e,omitempty"`
	D    string `json:"d,omitempty"`
}

// ListKeySetsRequest filters and pages stored key sets. Empty sort fields list newest first.
type ListKeySetsRequest struct {
	Name            string    `json:"name,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created,omitempty"`
	SortBy          string    `json:"sort_by,omitempty"`
	SortOrder       string    `json:"sort_order,omitempty"`
	Limit           int       `json:"limit,omitempty"`
	Offset          int       `json:"offset,omitempty"`
}

// KeySetIDRequest addresses a stored key set
type KeySetIDRequest struct {
	ID string `json:"id"`
}

// KeySetTransformRequest carries a message or ciphertext for a stored key set
type KeySetTransformRequest struct {
	ID    string `json:"id"`
	Value string `json:"value"`
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

// ListKeySetsResponse holds one page of key sets
type ListKeySetsResponse struct {
	KeySets []*KeySetResponse `json:"key_sets"`
}

// DeleteKeySetResponse acknowledges a deletion
type DeleteKeySetResponse struct {
	Message string `json:"message"`
}
