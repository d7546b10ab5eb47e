// Package modular provides the integer arithmetic shared by the curve engine
// and the RSA cipher: the extended Euclidean algorithm and modular inverses.
package modular

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNoInverse is returned when a has no multiplicative inverse mod m.
var ErrNoInverse = errors.New("modular: no multiplicative inverse")

var one = big.NewInt(1)

// ExtendedGCD returns gcd(a, b) together with Bézout coefficients x, y such
// that a*x + b*y == gcd. Inputs may be negative; quotients use floor division.
func ExtendedGCD(a, b *big.Int) (gcd, x, y *big.Int) {
	rPrev, r := new(big.Int).Set(a), new(big.Int).Set(b)
	xPrev, x := big.NewInt(1), big.NewInt(0)
	yPrev, y := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		floorDiv(q, rPrev, r)

		// (r_prev, r) = (r, r_prev - q*r), same for the coefficient pairs
		tmp.Mul(q, r)
		rPrev, r = r, new(big.Int).Sub(rPrev, tmp)

		tmp.Mul(q, x)
		xPrev, x = x, new(big.Int).Sub(xPrev, tmp)

		tmp.Mul(q, y)
		yPrev, y = y, new(big.Int).Sub(yPrev, tmp)
	}

	return rPrev, xPrev, yPrev
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, errors.Wrap(ErrNoInverse, "nil operand")
	}
	if m.Sign() <= 0 {
		return nil, errors.Wrapf(ErrNoInverse, "modulus %s is not positive", m)
	}

	gcd, x, _ := ExtendedGCD(a, m)
	if gcd.CmpAbs(one) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd(%s, %s) = %s", a, m, gcd)
	}
	// a negative gcd of -1 flips the sign of the coefficient
	if gcd.Sign() < 0 {
		x.Neg(x)
	}

	return x.Mod(x, m), nil
}

// floorDiv sets z to floor(a / b) and returns z.
func floorDiv(z, a, b *big.Int) *big.Int {
	r := new(big.Int)
	z.QuoRem(a, b, r)
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		z.Sub(z, one)
	}
	return z
}
