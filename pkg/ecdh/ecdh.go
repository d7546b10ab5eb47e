// Package ecdh implements elliptic-curve Diffie-Hellman key agreement over a
// caller-supplied curve and generator.
//
// Private keys are positive integers chosen by the caller. Both parties
// derive the same shared secret because n·(m·G) == m·(n·G):
//
//	kx, err := ecdh.New(curve, g)
//	alicePub, _ := kx.GeneratePublicKey(alicePriv)
//	bobPub, _ := kx.GeneratePublicKey(bobPriv)
//	s1, _ := kx.CalculateSharedSecret(alicePriv, bobPub)
//	s2, _ := kx.CalculateSharedSecret(bobPriv, alicePub)
//	// s1.Equal(s2)
package ecdh

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// KeyExchange derives public keys and shared secrets on a fixed curve and
// generator. The curve may be shared with other exchanges.
type KeyExchange struct {
	curve *ec.Curve
	g     ec.Point
}

// New returns a key exchange over curve with generator g. The generator must
// be an affine point on the curve.
func New(curve *ec.Curve, g ec.Point) (*KeyExchange, error) {
	if curve == nil {
		return nil, errors.Wrap(ec.ErrInvalidType, "ecdh: curve must not be nil")
	}
	if g.IsIdentity() {
		return nil, errors.Wrap(ec.ErrInvalidValue, "ecdh: generator must not be the identity")
	}
	if !curve.HasPoint(g) {
		return nil, errors.Wrapf(ec.ErrNotOnCurve, "ecdh: generator %s", g)
	}
	return &KeyExchange{curve: curve, g: g}, nil
}

// Curve returns the underlying curve.
func (k *KeyExchange) Curve() *ec.Curve { return k.curve }

// Generator returns the generator point.
func (k *KeyExchange) Generator() ec.Point { return k.g }

// GeneratePublicKey returns privateKey·G.
func (k *KeyExchange) GeneratePublicKey(privateKey *big.Int) (ec.Point, error) {
	if err := validatePrivateKey(privateKey); err != nil {
		return ec.Point{}, err
	}
	pub, err := k.curve.Mult(k.g, privateKey)
	if err != nil {
		return ec.Point{}, errors.WithMessage(err, "ecdh: public key")
	}
	return pub, nil
}

// CalculateSharedSecret returns privateKey·publicKey. The public key must lie
// on the curve; its coordinates are reduced modulo the field prime first.
func (k *KeyExchange) CalculateSharedSecret(privateKey *big.Int, publicKey ec.Point) (ec.Point, error) {
	if err := validatePrivateKey(privateKey); err != nil {
		return ec.Point{}, err
	}
	if !k.curve.HasPoint(publicKey) {
		return ec.Point{}, errors.Wrapf(ec.ErrNotOnCurve, "ecdh: public key %s", publicKey)
	}
	p := k.curve.Modulus()
	pub := ec.NewPoint(new(big.Int).Mod(publicKey.X(), p), new(big.Int).Mod(publicKey.Y(), p))
	secret, err := k.curve.Mult(pub, privateKey)
	if err != nil {
		return ec.Point{}, errors.WithMessage(err, "ecdh: shared secret")
	}
	return secret, nil
}

func validatePrivateKey(privateKey *big.Int) error {
	if privateKey == nil {
		return errors.Wrap(ec.ErrInvalidType, "ecdh: private key must not be nil")
	}
	if privateKey.Sign() <= 0 {
		return errors.Wrapf(ec.ErrInvalidValue, "ecdh: private key %s is not positive", privateKey)
	}
	return nil
}
