//go:build unit
// +build unit

package classical

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		a, b int64
		g    int64
	}{
		{240, 46, 2},
		{17, 3120, 1},
		{3120, 17, 1},
		{7, 0, 7},
		{0, 9, 9},
		{12, 18, 6},
	}

	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		g, x, y := ExtendedGCD(a, b)

		assert.Equal(t, tt.g, g.Int64(), "gcd(%d, %d)", tt.a, tt.b)

		combo := new(big.Int).Add(new(big.Int).Mul(a, x), new(big.Int).Mul(b, y))
		assert.Equal(t, 0, combo.Cmp(g), "bezout identity for (%d, %d)", tt.a, tt.b)
	}
}

func TestExtendedGCD_TerminalCase(t *testing.T) {
	g, x, y := ExtendedGCD(big.NewInt(42), big.NewInt(0))
	assert.Equal(t, int64(42), g.Int64())
	assert.Equal(t, int64(1), x.Int64())
	assert.Equal(t, int64(0), y.Int64())
}

func TestModInverse(t *testing.T) {
	t.Run("RSA textbook exponent", func(t *testing.T) {
		inv, err := ModInverse(big.NewInt(17), big.NewInt(3120))
		require.NoError(t, err)
		assert.Equal(t, int64(2753), inv.Int64())
	})

	t.Run("result in range and inverts", func(t *testing.T) {
		m := big.NewInt(97)
		for a := int64(1); a < 97; a++ {
			inv, err := ModInverse(big.NewInt(a), m)
			require.NoError(t, err)
			assert.True(t, inv.Sign() >= 0 && inv.Cmp(m) < 0)

			check := new(big.Int).Mul(big.NewInt(a), inv)
			assert.Equal(t, int64(1), check.Mod(check, m).Int64())
		}
	})

	t.Run("fails exactly when gcd is not one", func(t *testing.T) {
		m := big.NewInt(12)
		for a := int64(1); a < 12; a++ {
			_, err := ModInverse(big.NewInt(a), m)
			gcd := new(big.Int).GCD(nil, nil, big.NewInt(a), m)
			if gcd.Int64() == 1 {
				assert.NoError(t, err, "a=%d", a)
			} else {
				assert.ErrorIs(t, err, ErrNoInverse, "a=%d", a)
			}
		}
	})

	t.Run("negative operand", func(t *testing.T) {
		inv, err := ModInverse(big.NewInt(-3), big.NewInt(7))
		require.NoError(t, err)
		// -3 ≡ 4 (mod 7), 4*2 = 8 ≡ 1
		assert.Equal(t, int64(2), inv.Int64())
	})

	t.Run("non-positive modulus", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(3), big.NewInt(0))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestModPow(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		r, err := ModPow(big.NewInt(4), big.NewInt(13), big.NewInt(497))
		require.NoError(t, err)
		assert.Equal(t, int64(445), r.Int64())
	})

	t.Run("zero exponent yields one mod m", func(t *testing.T) {
		for _, m := range []int64{2, 3, 97, 3233} {
			for _, b := range []int64{0, 1, 5, -8, 1000} {
				r, err := ModPow(big.NewInt(b), big.NewInt(0), big.NewInt(m))
				require.NoError(t, err)
				assert.Equal(t, int64(1), r.Int64(), "b=%d m=%d", b, m)
			}
		}
	})

	t.Run("zero base yields zero", func(t *testing.T) {
		r, err := ModPow(big.NewInt(0), big.NewInt(5), big.NewInt(11))
		require.NoError(t, err)
		assert.Equal(t, int64(0), r.Int64())
	})

	t.Run("negative base is reduced first", func(t *testing.T) {
		r, err := ModPow(big.NewInt(-2), big.NewInt(3), big.NewInt(7))
		require.NoError(t, err)
		// (-2 mod 7)^3 = 5^3 = 125 ≡ 6
		assert.Equal(t, int64(6), r.Int64())
	})

	t.Run("agrees with math/big beyond machine words", func(t *testing.T) {
		base, _ := new(big.Int).SetString("987654321987654321987654321", 10)
		exp, _ := new(big.Int).SetString("123456789123456789123456789", 10)
		mod, _ := new(big.Int).SetString("340282366920938463463374607431768211507", 10)

		r, err := ModPow(base, exp, mod)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Cmp(new(big.Int).Exp(base, exp, mod)))
	})

	t.Run("negative exponent", func(t *testing.T) {
		_, err := ModPow(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-positive modulus", func(t *testing.T) {
		_, err := ModPow(big.NewInt(2), big.NewInt(3), big.NewInt(0))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
