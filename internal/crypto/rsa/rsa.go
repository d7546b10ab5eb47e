// Package rsa implements textbook RSA over caller-chosen primes with a
// little-endian block framing for byte streams. It provides no padding and
// is not suitable for protecting real data.
package rsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/modular"
	"github.com/smallyu/go-ecarith/internal/crypto/primes"
)

// DefaultPublicExponent is tried first for e; a random odd exponent is drawn
// when it is not coprime to φ(n).
const DefaultPublicExponent = 65537

var (
	ErrInvalidPrimes   = errors.New("rsa: p and q must be distinct primes")
	ErrModulusTooSmall = errors.New("rsa: modulus must be at least 9 bits")
	ErrDecryption      = errors.New("rsa: decryption error")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Key is one half of an RSA key pair.
type Key struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// GenerateKeys returns the public key (e, n) and private key (d, n) for the
// primes p and q. random is used only when 65537 is not coprime to φ(n).
func GenerateKeys(random io.Reader, p, q *big.Int) (public, private Key, err error) {
	if p == nil || q == nil || p.Cmp(q) == 0 {
		return Key{}, Key{}, ErrInvalidPrimes
	}
	for _, v := range []*big.Int{p, q} {
		ok, err := primes.IsPrime(v)
		if err != nil || !ok {
			return Key{}, Key{}, errors.Wrapf(ErrInvalidPrimes, "%s is not prime", v)
		}
	}

	n := new(big.Int).Mul(p, q)
	if n.BitLen() < 9 {
		return Key{}, Key{}, errors.Wrapf(ErrModulusTooSmall, "n=%s", n)
	}

	// φ(n) = (p-1)(q-1)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e := big.NewInt(DefaultPublicExponent)
	gcd := new(big.Int)
	for gcd.GCD(nil, nil, e, phi).Cmp(one) != 0 {
		e, err = randomOddExponent(random, phi)
		if err != nil {
			return Key{}, Key{}, err
		}
	}

	d, err := modular.ModInverse(e, phi)
	if err != nil {
		return Key{}, Key{}, errors.WithMessage(err, "rsa: private exponent")
	}

	return Key{Exponent: e, Modulus: n}, Key{Exponent: d, Modulus: new(big.Int).Set(n)}, nil
}

// randomOddExponent draws an odd e uniformly from [3, phi).
func randomOddExponent(random io.Reader, phi *big.Int) (*big.Int, error) {
	// odd values in [3, phi) are 3 + 2k for k in [0, (phi-2)/2)
	count := new(big.Int).Sub(phi, two)
	count.Rsh(count, 1)
	if count.Sign() <= 0 {
		return nil, errors.Errorf("rsa: no candidate exponent below φ(n)=%s", phi)
	}
	if random == nil {
		random = rand.Reader
	}
	k, err := rand.Int(random, count)
	if err != nil {
		return nil, errors.Wrap(err, "rsa: drawing exponent")
	}
	k.Lsh(k, 1)
	return k.Add(k, big.NewInt(3)), nil
}

// Encrypt splits plaintext into blocks one byte shorter than the modulus,
// reads each block as a little-endian integer, and writes each result as a
// little-endian block of the modulus' byte length.
func Encrypt(plaintext []byte, key Key) ([]byte, error) {
	modLen, err := modulusLen(key)
	if err != nil {
		return nil, err
	}
	blockLen := modLen - 1

	out := make([]byte, 0, (len(plaintext)/blockLen+1)*modLen)
	m := new(big.Int)
	for start := 0; start < len(plaintext); start += blockLen {
		end := start + blockLen
		if end > len(plaintext) {
			end = len(plaintext)
		}
		m.SetBytes(reversed(plaintext[start:end]))
		c := new(big.Int).Exp(m, key.Exponent, key.Modulus)
		out = append(out, littleEndian(c, modLen)...)
	}
	return out, nil
}

// Decrypt reverses Encrypt. Every block but the last yields exactly one byte
// less than the modulus length; the last block is trimmed to the length of
// its integer value, so trailing zero bytes of the original plaintext are not
// recovered.
func Decrypt(ciphertext []byte, key Key) ([]byte, error) {
	modLen, err := modulusLen(key)
	if err != nil {
		return nil, err
	}
	blockLen := modLen - 1

	out := make([]byte, 0, len(ciphertext))
	c := new(big.Int)
	start := 0
	for ; start+modLen < len(ciphertext); start += modLen {
		c.SetBytes(reversed(ciphertext[start : start+modLen]))
		m := new(big.Int).Exp(c, key.Exponent, key.Modulus)
		if m.BitLen() > 8*blockLen {
			return nil, errors.Wrapf(ErrDecryption, "block at offset %d does not fit %d bytes", start, blockLen)
		}
		out = append(out, littleEndian(m, blockLen)...)
	}

	// final block, without its zero padding
	c.SetBytes(reversed(ciphertext[start:]))
	m := new(big.Int).Exp(c, key.Exponent, key.Modulus)
	if m.BitLen() > 8*blockLen {
		return nil, errors.Wrapf(ErrDecryption, "block at offset %d does not fit %d bytes", start, blockLen)
	}
	out = append(out, littleEndian(m, (m.BitLen()+7)/8)...)

	return out, nil
}

func modulusLen(key Key) (int, error) {
	if key.Exponent == nil || key.Modulus == nil || key.Exponent.Sign() <= 0 {
		return 0, errors.New("rsa: incomplete key")
	}
	if key.Modulus.BitLen() < 9 {
		return 0, errors.Wrapf(ErrModulusTooSmall, "n=%s", key.Modulus)
	}
	return (key.Modulus.BitLen() + 7) / 8, nil
}

func littleEndian(v *big.Int, size int) []byte {
	buf := v.FillBytes(make([]byte, size))
	return reversed(buf)
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
