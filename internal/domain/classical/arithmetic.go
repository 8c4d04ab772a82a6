package classical

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// ExtendedGCD returns g, x, y such that g = a*x + b*y and g = gcd(a, b).
// When b is zero the result is (a, 1, 0).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}

	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	quotient := new(big.Int)
	for r.Sign() != 0 {
		// truncated division keeps the recurrence identical to the recursive definition
		quotient.Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(quotient, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(quotient, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(quotient, t))
	}

	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive, got %s", ErrInvalidInput, m)
	}

	g, x, _ := ExtendedGCD(a, m)
	if g.CmpAbs(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNoInverse, a, m, new(big.Int).Abs(g))
	}
	if g.Sign() < 0 {
		x.Neg(x)
	}

	return x.Mod(x, m), nil
}

// ModPow computes base^exponent mod modulus by binary square-and-multiply.
// The base is reduced into [0, modulus) first, so negative bases are accepted.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive, got %s", ErrInvalidInput, modulus)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: exponent must be non-negative, got %s", ErrInvalidInput, exponent)
	}

	result := new(big.Int).Mod(one, modulus)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}

	return result, nil
}
