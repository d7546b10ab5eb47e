package rsa

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeys(t *testing.T) {
	t.Run("textbook primes", func(t *testing.T) {
		pub, priv, err := GenerateKeys(rand.Reader, big.NewInt(61), big.NewInt(53))
		require.NoError(t, err)

		assert.Equal(t, int64(3233), pub.Modulus.Int64())
		assert.Equal(t, int64(DefaultPublicExponent), pub.Exponent.Int64())

		// e·d ≡ 1 mod φ(n)
		ed := new(big.Int).Mul(pub.Exponent, priv.Exponent)
		ed.Mod(ed, big.NewInt(60*52))
		assert.Equal(t, int64(1), ed.Int64())
		assert.True(t, priv.Exponent.Sign() > 0)
	})

	t.Run("fallback exponent", func(t *testing.T) {
		// 917519 - 1 = 14·65537, so 65537 divides φ(n)
		pub, priv, err := GenerateKeys(rand.Reader, big.NewInt(917519), big.NewInt(11))
		require.NoError(t, err)

		phi := big.NewInt(917518 * 10)
		assert.NotEqual(t, int64(DefaultPublicExponent), pub.Exponent.Int64())
		assert.Equal(t, uint(1), pub.Exponent.Bit(0))
		assert.Zero(t, new(big.Int).GCD(nil, nil, pub.Exponent, phi).Cmp(big.NewInt(1)))

		msg := []byte("fallback")
		ct, err := Encrypt(msg, pub)
		require.NoError(t, err)
		pt, err := Decrypt(ct, priv)
		require.NoError(t, err)
		assert.Equal(t, msg, pt)
	})

	t.Run("invalid primes", func(t *testing.T) {
		cases := [][2]int64{{61, 61}, {60, 53}, {61, 1}}
		for _, c := range cases {
			_, _, err := GenerateKeys(rand.Reader, big.NewInt(c[0]), big.NewInt(c[1]))
			assert.True(t, errors.Is(err, ErrInvalidPrimes), "%v", c)
		}

		_, _, err := GenerateKeys(rand.Reader, nil, big.NewInt(53))
		assert.True(t, errors.Is(err, ErrInvalidPrimes))
	})

	t.Run("modulus too small", func(t *testing.T) {
		_, _, err := GenerateKeys(rand.Reader, big.NewInt(3), big.NewInt(5))
		assert.True(t, errors.Is(err, ErrModulusTooSmall))
	})
}

func TestRoundTrip(t *testing.T) {
	p, err := rand.Prime(rand.Reader, 256)
	require.NoError(t, err)
	q, err := rand.Prime(rand.Reader, 256)
	require.NoError(t, err)
	for p.Cmp(q) == 0 {
		q, err = rand.Prime(rand.Reader, 256)
		require.NoError(t, err)
	}

	pub, priv, err := GenerateKeys(rand.Reader, p, q)
	require.NoError(t, err)

	messages := [][]byte{
		{},
		[]byte("a"),
		[]byte("hello, world"),
		bytes.Repeat([]byte("multi block plaintext "), 40),
		append([]byte{0, 0, 0}, []byte("leading zeros survive")...),
	}
	for _, msg := range messages {
		ct, err := Encrypt(msg, pub)
		require.NoError(t, err)

		modLen := (pub.Modulus.BitLen() + 7) / 8
		assert.Zero(t, len(ct)%modLen)

		pt, err := Decrypt(ct, priv)
		require.NoError(t, err)
		assert.Equal(t, msg, pt, "len=%d", len(msg))
	}
}

func TestSmallModulusBlocks(t *testing.T) {
	pub, priv, err := GenerateKeys(rand.Reader, big.NewInt(61), big.NewInt(53))
	require.NoError(t, err)

	msg := []byte("one byte per block")
	ct, err := Encrypt(msg, pub)
	require.NoError(t, err)
	assert.Len(t, ct, 2*len(msg))

	pt, err := Decrypt(ct, priv)
	require.NoError(t, err)
	assert.Equal(t, msg, pt)
}

func TestTrailingZerosAreDropped(t *testing.T) {
	pub, priv, err := GenerateKeys(rand.Reader, big.NewInt(61), big.NewInt(53))
	require.NoError(t, err)

	ct, err := Encrypt([]byte{'a', 'b', 0}, pub)
	require.NoError(t, err)

	pt, err := Decrypt(ct, priv)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), pt)
}

func TestDecryptWithWrongKey(t *testing.T) {
	pub, _, err := GenerateKeys(rand.Reader, big.NewInt(61), big.NewInt(53))
	require.NoError(t, err)

	ct, err := Encrypt([]byte("mismatched key"), pub)
	require.NoError(t, err)

	// decrypting with the public key yields blocks that exceed one byte:
	// 'm' comes back as 2305
	_, err = Decrypt(ct, pub)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecryption))

	t.Run("single block", func(t *testing.T) {
		// 'W' comes back as 3202
		ct, err := Encrypt([]byte("W"), pub)
		require.NoError(t, err)
		require.Len(t, ct, 2)

		pt, err := Decrypt(ct, pub)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDecryption))
		assert.Nil(t, pt)
	})
}

func TestIncompleteKey(t *testing.T) {
	_, err := Encrypt([]byte("x"), Key{})
	assert.Error(t, err)

	_, err = Decrypt([]byte("x"), Key{Exponent: big.NewInt(3), Modulus: big.NewInt(15)})
	assert.True(t, errors.Is(err, ErrModulusTooSmall))
}
