package classical

import (
	"fmt"
	"math/big"
	"strings"
)

// KeyParameters is a derived textbook RSA tuple. E and D always satisfy E*D ≡ 1 (mod Phi).
type KeyParameters struct {
	P   *big.Int
	Q   *big.Int
	N   *big.Int
	Phi *big.Int
	E   *big.Int
	D   *big.Int
}

// Report renders the tuple one value per line, followed by the public and private key pairs.
func (k *KeyParameters) Report() string {
	return strings.Join([]string{
		fmt.Sprintf("d = %s", k.D),
		fmt.Sprintf("e = %s", k.E),
		fmt.Sprintf("p = %s", k.P),
		fmt.Sprintf("q = %s", k.Q),
		fmt.Sprintf("N = %s", k.N),
		fmt.Sprintf("φ(N) = %s", k.Phi),
		fmt.Sprintf("Ek = (%s, %s)", k.E, k.N),
		fmt.Sprintf("Dk = (%s, %s)", k.D, k.N),
	}, "\n")
}

// Transformation is the outcome of an RSA encryption or decryption.
type Transformation struct {
	// Input is the value that was actually exponentiated, after any reduction modulo N.
	Input  *big.Int
	Output *big.Int
	// Warning is set when the caller's value was reduced modulo N first.
	Warning *OutOfRangeWarning
}

// DeriveParameters computes N and φ(N) from p and q and fills in whichever exponent is nil.
// When both exponents are given they must be inverses modulo φ(N).
func DeriveParameters(p, q, e, d *big.Int) (*KeyParameters, error) {
	if p == nil || q == nil {
		return nil, fmt.Errorf("%w: p and q are required", ErrInvalidInput)
	}
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: p,q must be > 1", ErrInvalidInput)
	}
	if e == nil && d == nil {
		return nil, fmt.Errorf("%w: provide at least d or e", ErrInvalidInput)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	params := &KeyParameters{
		P:   new(big.Int).Set(p),
		Q:   new(big.Int).Set(q),
		N:   n,
		Phi: phi,
	}

	switch {
	case e != nil && d == nil:
		inv, err := ModInverse(new(big.Int).Mod(e, phi), phi)
		if err != nil {
			return nil, fmt.Errorf("failed to derive d from e: %w", err)
		}
		params.E, params.D = new(big.Int).Set(e), inv
	case d != nil && e == nil:
		inv, err := ModInverse(new(big.Int).Mod(d, phi), phi)
		if err != nil {
			return nil, fmt.Errorf("failed to derive e from d: %w", err)
		}
		params.E, params.D = inv, new(big.Int).Set(d)
	default:
		product := new(big.Int).Mul(e, d)
		if product.Mod(product, phi).Cmp(new(big.Int).Mod(one, phi)) != 0 {
			return nil, fmt.Errorf("%w: e=%s, d=%s, φ(N)=%s", ErrInconsistentKey, e, d, phi)
		}
		params.E, params.D = new(big.Int).Set(e), new(big.Int).Set(d)
	}

	return params, nil
}

// Encrypt computes message^e mod n. Messages not below n are reduced modulo n and reported
// through the Warning field.
func Encrypt(message, e, n *big.Int) (*Transformation, error) {
	return transform("M", message, e, n)
}

// Decrypt computes ciphertext^d mod n with the same range policy as Encrypt.
func Decrypt(ciphertext, d, n *big.Int) (*Transformation, error) {
	return transform("C", ciphertext, d, n)
}

func transform(name string, value, exponent, n *big.Int) (*Transformation, error) {
	if value == nil || exponent == nil || n == nil {
		return nil, fmt.Errorf("%w: %s, exponent and N are required", ErrInvalidInput, name)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, name)
	}
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: N must be positive", ErrInvalidInput)
	}

	t := &Transformation{Input: new(big.Int).Set(value)}
	if value.Cmp(n) >= 0 {
		t.Input.Mod(value, n)
		t.Warning = &OutOfRangeWarning{
			Original:   new(big.Int).Set(value),
			Normalized: new(big.Int).Set(t.Input),
		}
	}

	out, err := ModPow(t.Input, exponent, n)
	if err != nil {
		return nil, err
	}
	t.Output = out

	return t, nil
}
