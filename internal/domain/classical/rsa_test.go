//go:build unit
// +build unit

package classical

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveParameters(t *testing.T) {
	p, q := big.NewInt(61), big.NewInt(53)

	t.Run("derive d from e", func(t *testing.T) {
		params, err := DeriveParameters(p, q, big.NewInt(17), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3233), params.N.Int64())
		assert.Equal(t, int64(3120), params.Phi.Int64())
		assert.Equal(t, int64(17), params.E.Int64())
		assert.Equal(t, int64(2753), params.D.Int64())
	})

	t.Run("derive e from d", func(t *testing.T) {
		params, err := DeriveParameters(p, q, nil, big.NewInt(2753))
		require.NoError(t, err)
		assert.Equal(t, int64(17), params.E.Int64())
		assert.Equal(t, int64(2753), params.D.Int64())
	})

	t.Run("consistent pair", func(t *testing.T) {
		params, err := DeriveParameters(p, q, big.NewInt(17), big.NewInt(2753))
		require.NoError(t, err)
		assert.Equal(t, int64(2753), params.D.Int64())
	})

	t.Run("inconsistent pair", func(t *testing.T) {
		_, err := DeriveParameters(p, q, big.NewInt(17), big.NewInt(2754))
		assert.ErrorIs(t, err, ErrInconsistentKey)
	})

	t.Run("negative exponent is normalized before inversion", func(t *testing.T) {
		params, err := DeriveParameters(p, q, big.NewInt(17-3120), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2753), params.D.Int64())
	})

	t.Run("exponent without inverse", func(t *testing.T) {
		_, err := DeriveParameters(p, q, big.NewInt(4), nil)
		assert.ErrorIs(t, err, ErrNoInverse)
	})

	t.Run("neither exponent", func(t *testing.T) {
		_, err := DeriveParameters(p, q, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("p or q not above one", func(t *testing.T) {
		_, err := DeriveParameters(big.NewInt(1), q, big.NewInt(17), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = DeriveParameters(p, big.NewInt(-5), big.NewInt(17), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestKeyParameters_Report(t *testing.T) {
	params, err := DeriveParameters(big.NewInt(61), big.NewInt(53), big.NewInt(17), nil)
	require.NoError(t, err)

	report := params.Report()
	assert.Contains(t, report, "d = 2753")
	assert.Contains(t, report, "N = 3233")
	assert.Contains(t, report, "φ(N) = 3120")
	assert.Contains(t, report, "Ek = (17, 3233)")
	assert.Contains(t, report, "Dk = (2753, 3233)")
}

func TestEncryptDecrypt(t *testing.T) {
	n, e, d := big.NewInt(3233), big.NewInt(17), big.NewInt(2753)

	t.Run("textbook vector", func(t *testing.T) {
		enc, err := Encrypt(big.NewInt(65), e, n)
		require.NoError(t, err)
		assert.Equal(t, int64(2790), enc.Output.Int64())
		assert.Nil(t, enc.Warning)

		dec, err := Decrypt(big.NewInt(2790), d, n)
		require.NoError(t, err)
		assert.Equal(t, int64(65), dec.Output.Int64())
	})

	t.Run("out of range input is normalized and reported", func(t *testing.T) {
		enc, err := Encrypt(big.NewInt(3233+65), e, n)
		require.NoError(t, err)
		require.NotNil(t, enc.Warning)
		assert.Equal(t, int64(3298), enc.Warning.Original.Int64())
		assert.Equal(t, int64(65), enc.Warning.Normalized.Int64())
		assert.Equal(t, int64(65), enc.Input.Int64())
		assert.Equal(t, int64(2790), enc.Output.Int64())
		assert.Contains(t, enc.Warning.String(), "3298 → 65")
	})

	t.Run("round trip reproduces M mod N", func(t *testing.T) {
		for m := int64(0); m < 7000; m += 97 {
			enc, err := Encrypt(big.NewInt(m), e, n)
			require.NoError(t, err)
			dec, err := Decrypt(enc.Output, d, n)
			require.NoError(t, err)
			assert.Equal(t, m%3233, dec.Output.Int64())
		}
	})

	t.Run("negative message rejected", func(t *testing.T) {
		_, err := Encrypt(big.NewInt(-1), e, n)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = Decrypt(big.NewInt(-1), d, n)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("recomputation is deterministic", func(t *testing.T) {
		a, err := DeriveParameters(big.NewInt(61), big.NewInt(53), big.NewInt(17), nil)
		require.NoError(t, err)
		b, err := DeriveParameters(big.NewInt(61), big.NewInt(53), big.NewInt(17), nil)
		require.NoError(t, err)
		assert.Equal(t, a.Report(), b.Report())
	})
}
