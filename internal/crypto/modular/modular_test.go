package modular

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	cases := []struct {
		a, b, gcd int64
	}{
		{240, 46, 2},
		{46, 240, 2},
		{17, 5, 1},
		{-3, 7, 1},
		{3, -7, 1},
		{0, 9, 9},
		{12, 0, 12},
		{1071, 462, 21},
	}

	for _, c := range cases {
		a, b := big.NewInt(c.a), big.NewInt(c.b)
		gcd, x, y := ExtendedGCD(a, b)

		assert.Equal(t, c.gcd, new(big.Int).Abs(gcd).Int64(), "gcd(%d, %d)", c.a, c.b)

		// a*x + b*y == gcd
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		assert.Zero(t, lhs.Cmp(gcd), "bezout identity for (%d, %d)", c.a, c.b)
	}
}

func TestExtendedGCDMatchesFloorDivision(t *testing.T) {
	// Values produced by the iterative algorithm with floor quotients.
	gcd, x, y := ExtendedGCD(big.NewInt(240), big.NewInt(46))
	assert.Equal(t, int64(2), gcd.Int64())
	assert.Equal(t, int64(-9), x.Int64())
	assert.Equal(t, int64(47), y.Int64())
}

func TestModInverse(t *testing.T) {
	t.Run("small prime", func(t *testing.T) {
		p := big.NewInt(17)
		for a := int64(1); a < 17; a++ {
			inv, err := ModInverse(big.NewInt(a), p)
			require.NoError(t, err)

			prod := new(big.Int).Mul(big.NewInt(a), inv)
			prod.Mod(prod, p)
			assert.Equal(t, int64(1), prod.Int64(), "a=%d", a)
			assert.True(t, inv.Sign() >= 0 && inv.Cmp(p) < 0)
		}
	})

	t.Run("negative operand is reduced", func(t *testing.T) {
		inv, err := ModInverse(big.NewInt(-1), big.NewInt(17))
		require.NoError(t, err)
		assert.Equal(t, int64(16), inv.Int64())

		inv, err = ModInverse(big.NewInt(-5), big.NewInt(17))
		require.NoError(t, err)
		assert.Equal(t, int64(10), inv.Int64()) // -5 * 10 = -50 = 1 mod 17
	})

	t.Run("large prime", func(t *testing.T) {
		p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
		a, _ := new(big.Int).SetString("123456789abcdef0123456789abcdef", 16)

		inv, err := ModInverse(a, p)
		require.NoError(t, err)
		assert.Zero(t, inv.Cmp(new(big.Int).ModInverse(a, p)))
	})

	t.Run("zero has no inverse", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(0), big.NewInt(17))
		assert.True(t, errors.Is(err, ErrNoInverse))

		_, err = ModInverse(big.NewInt(34), big.NewInt(17))
		assert.True(t, errors.Is(err, ErrNoInverse))
	})

	t.Run("composite modulus", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(6), big.NewInt(15))
		assert.True(t, errors.Is(err, ErrNoInverse))

		inv, err := ModInverse(big.NewInt(7), big.NewInt(15))
		require.NoError(t, err)
		assert.Equal(t, int64(13), inv.Int64())
	})

	t.Run("invalid modulus", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(3), big.NewInt(0))
		assert.True(t, errors.Is(err, ErrNoInverse))

		_, err = ModInverse(big.NewInt(3), big.NewInt(-7))
		assert.True(t, errors.Is(err, ErrNoInverse))

		_, err = ModInverse(nil, big.NewInt(7))
		assert.True(t, errors.Is(err, ErrNoInverse))
	})
}
