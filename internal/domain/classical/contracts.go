package classical

import "math/big"

// RSAProcessor exposes the RSA engine to front ends that hand over raw field values.
type RSAProcessor interface {
	// DeriveParameters parses p, q and the optional exponents and derives the full tuple.
	// At least one of e or d must be an integer literal.
	DeriveParameters(p, q, e, d string) (*KeyParameters, error)

	// Encrypt computes M^e mod N with N = p*q. M must be non-negative; values not below N
	// are reduced and reported.
	Encrypt(p, q, e, message string) (*Transformation, error)

	// Decrypt computes C^d mod N with N = p*q under the same range policy as Encrypt.
	Decrypt(p, q, d, ciphertext string) (*Transformation, error)

	// EncryptWithKey encrypts with an already derived tuple.
	EncryptWithKey(params *KeyParameters, message *big.Int) (*Transformation, error)

	// DecryptWithKey decrypts with an already derived tuple.
	DecryptWithKey(params *KeyParameters, ciphertext *big.Int) (*Transformation, error)
}

// CaesarProcessor applies the Caesar shift over a named alphabet kind (EN or UA).
// Malformed shift values are treated as 0.
type CaesarProcessor interface {
	Encrypt(text, shift, kind string) (string, error)
	Decrypt(text, shift, kind string) (string, error)
}

// VigenereProcessor applies the Vigenère cipher over a named alphabet kind, pre-rotated by the
// raw ROT value.
type VigenereProcessor interface {
	Encrypt(text, key, rot, kind string) (string, error)
	Decrypt(text, key, rot, kind string) (string, error)

	// Trace returns the per-character computation of the encryption together with the
	// effective alphabet rotation.
	Trace(text, key, rot, kind string) (*TraceResult, error)
}

// PolybiusProcessor encodes and decodes with the square for a named alphabet kind.
type PolybiusProcessor interface {
	Encode(text, kind string) (string, error)
	Decode(tokens, kind string) (string, error)
}

// CipherEngine is the single capability consumed by every front end.
type CipherEngine interface {
	RSA() RSAProcessor
	Caesar() CaesarProcessor
	Vigenere() VigenereProcessor
	Polybius() PolybiusProcessor
}

// TraceResult bundles trace rows with the rotation that produced them.
type TraceResult struct {
	Rotation int         `json:"rotation"`
	Alphabet string      `json:"alphabet"`
	Rows     []StepTrace `json:"rows"`
}
