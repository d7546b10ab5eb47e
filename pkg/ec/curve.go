package ec

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/modular"
	"github.com/smallyu/go-ecarith/internal/crypto/primes"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// maxCountBits bounds the modulus size accepted by CountPoints, which walks
// every x in the field.
const maxCountBits = 24

// Curve is a short Weierstrass curve y² = x³ + a·x + b over the integers
// modulo a prime. A Curve is immutable and safe for concurrent use.
type Curve struct {
	a, b, p *big.Int
}

// New returns the curve y² = x³ + a·x + b (mod modulus).
//
// The parameters must satisfy modulus > 2, 0 <= a < modulus,
// 0 < b < modulus, and 4a³ + 27b² must be non-zero modulo the modulus.
// a = 0 is accepted so that curves such as secp256k1 (y² = x³ + 7) can be
// expressed. Primality of the modulus is not checked here.
func New(a, b, modulus *big.Int) (*Curve, error) {
	if a == nil || b == nil || modulus == nil {
		return nil, errors.Wrap(ErrInvalidType, "curve parameters must not be nil")
	}
	if modulus.Cmp(two) <= 0 {
		return nil, errors.Wrapf(ErrInvalidCurve, "modulus %s must be greater than 2", modulus)
	}
	if a.Sign() < 0 || a.Cmp(modulus) >= 0 {
		return nil, errors.Wrapf(ErrInvalidCurve, "a=%s must be in [0, %s)", a, modulus)
	}
	if b.Sign() <= 0 || b.Cmp(modulus) >= 0 {
		return nil, errors.Wrapf(ErrInvalidCurve, "b=%s must be in (0, %s)", b, modulus)
	}

	// 4a³ + 27b²
	disc := new(big.Int).Exp(a, three, nil)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	disc.Mod(disc, modulus)
	if disc.Sign() == 0 {
		return nil, errors.Wrap(ErrInvalidCurve, "curve is singular")
	}

	return &Curve{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
		p: new(big.Int).Set(modulus),
	}, nil
}

// NewInt64 is New for small parameters.
func NewInt64(a, b, modulus int64) (*Curve, error) {
	return New(big.NewInt(a), big.NewInt(b), big.NewInt(modulus))
}

// A returns a copy of the a coefficient.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the b coefficient.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// Modulus returns a copy of the field size.
func (c *Curve) Modulus() *big.Int { return new(big.Int).Set(c.p) }

func (c *Curve) String() string {
	return fmt.Sprintf("Curve(a=%s, b=%s, mod=%s)", c.a, c.b, c.p)
}

// Add returns p1 + p2 under the chord-and-tangent group law.
//
// An error is returned only when a slope denominator has no inverse, which
// means the modulus is not prime or a coordinate is not reduced.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.IsIdentity() {
		return p2, nil
	}
	if p2.IsIdentity() {
		return p1, nil
	}

	same := p1.Equal(p2)

	// a point of order two doubles to the identity
	if same && p1.y.Sign() == 0 {
		return Identity(), nil
	}
	// mutual negatives lie on a vertical line
	if p1.x.Cmp(p2.x) == 0 && p1.y.Cmp(p2.y) != 0 {
		return Identity(), nil
	}

	var num, den *big.Int
	if !same {
		// chord: (y2 - y1) / (x2 - x1)
		num = new(big.Int).Sub(p2.y, p1.y)
		den = new(big.Int).Sub(p2.x, p1.x)
	} else {
		// tangent: (3x² + a) / 2y
		num = new(big.Int).Mul(p1.x, p1.x)
		num.Mul(num, three)
		num.Add(num, c.a)
		den = new(big.Int).Mul(p1.y, two)
	}

	inv, err := modular.ModInverse(den, c.p)
	if err != nil {
		return Point{}, errors.WithMessagef(err, "ec: slope denominator for %s + %s", p1, p2)
	}
	s := num.Mul(num, inv)
	s.Mod(s, c.p)

	// x3 = s² - x1 - x2
	x3 := new(big.Int).Mul(s, s)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, c.p)

	// y3 = s(x1 - x3) - y1
	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, s)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, affine: true}, nil
}

// Double returns p + p.
func (c *Curve) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// Mult returns n·p using left-to-right double-and-add, so the cost is
// O(log n) group operations. n must be non-negative; Mult(p, 0) is the
// identity.
func (c *Curve) Mult(p Point, n *big.Int) (Point, error) {
	if n == nil {
		return Point{}, errors.Wrap(ErrInvalidType, "scalar must not be nil")
	}
	if n.Sign() < 0 {
		return Point{}, errors.Wrapf(ErrInvalidValue, "scalar %s is negative", n)
	}
	if n.Sign() == 0 {
		return Identity(), nil
	}

	// the accumulator starts at p for the leading bit
	acc := p
	var err error
	for i := n.BitLen() - 2; i >= 0; i-- {
		acc, err = c.Add(acc, acc)
		if err != nil {
			return Point{}, err
		}
		if n.Bit(i) == 1 {
			acc, err = c.Add(acc, p)
			if err != nil {
				return Point{}, err
			}
		}
	}

	return acc, nil
}

// HasPoint reports whether p satisfies the curve equation with x below the
// modulus. The identity is not reported as a curve point.
func (c *Curve) HasPoint(p Point) bool {
	if p.IsIdentity() {
		return false
	}
	if p.x.Cmp(c.p) >= 0 {
		return false
	}

	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, c.p)

	return y2.Cmp(c.polynomial(p.x)) == 0
}

// Negate returns -p. p must be the identity or a point on the curve.
func (c *Curve) Negate(p Point) (Point, error) {
	if p.IsIdentity() {
		return p, nil
	}
	if !c.HasPoint(p) {
		return Point{}, errors.Wrapf(ErrNotOnCurve, "cannot negate %s", p)
	}

	y := new(big.Int).Neg(p.y)
	y.Mod(y, c.p)
	return Point{x: p.x, y: y, affine: true}, nil
}

// PointsAt returns the two curve points with the given x-coordinate, (x, y)
// and (x, -y), where y is the smaller square root of x³ + a·x + b modulo the
// field prime. Both results are equal when y is zero.
func (c *Curve) PointsAt(x *big.Int) (Point, Point, error) {
	if x == nil {
		return Point{}, Point{}, errors.Wrap(ErrInvalidType, "x-value must not be nil")
	}
	if x.Sign() < 0 || x.Cmp(c.p) >= 0 {
		return Point{}, Point{}, errors.Wrapf(ErrInvalidValue, "x-value %s must be in [0, %s)", x, c.p)
	}
	if err := c.requirePrime(); err != nil {
		return Point{}, Point{}, err
	}

	y2 := c.polynomial(x)
	y := new(big.Int).ModSqrt(y2, c.p)
	if y == nil {
		return Point{}, Point{}, errors.Wrapf(ErrNoSquareRoot, "no curve point at x=%s", x)
	}

	neg := new(big.Int).Sub(c.p, y)
	neg.Mod(neg, c.p)
	if neg.Cmp(y) < 0 {
		y, neg = neg, y
	}

	return NewPoint(x, y), NewPoint(x, neg), nil
}

// HassesBound returns the interval p + 1 ± 2√p that contains the number of
// points on the curve. The square root is computed with enough precision for
// the size of the modulus.
func (c *Curve) HassesBound() (lower, upper *big.Float) {
	prec := uint(2*c.p.BitLen() + 64)

	root := new(big.Float).SetPrec(prec).SetInt(c.p)
	root.Sqrt(root)
	root.Mul(root, new(big.Float).SetPrec(prec).SetInt64(2))

	center := new(big.Float).SetPrec(prec).SetInt(c.p)
	center.Add(center, new(big.Float).SetPrec(prec).SetInt64(1))

	lower = new(big.Float).SetPrec(prec).Sub(center, root)
	upper = new(big.Float).SetPrec(prec).Add(center, root)
	return lower, upper
}

// CountPoints returns the number of points on the curve, identity included.
// It evaluates the Legendre symbol for every x in the field, so it is only
// accepted for moduli of at most 24 bits.
func (c *Curve) CountPoints() (*big.Int, error) {
	if c.p.BitLen() > maxCountBits {
		return nil, errors.Wrapf(ErrInvalidValue, "modulus has %d bits, enumeration limit is %d", c.p.BitLen(), maxCountBits)
	}
	if err := c.requirePrime(); err != nil {
		return nil, err
	}

	count := int64(1) // identity
	for x := int64(0); x < c.p.Int64(); x++ {
		switch big.Jacobi(c.polynomial(big.NewInt(x)), c.p) {
		case 0:
			count++
		case 1:
			count += 2
		}
	}

	return big.NewInt(count), nil
}

// polynomial returns x³ + a·x + b reduced into [0, p).
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)

	ax := new(big.Int).Mul(c.a, x)

	x3.Add(x3, ax)
	x3.Add(x3, c.b)
	return x3.Mod(x3, c.p)
}

func (c *Curve) requirePrime() error {
	ok, err := primes.IsPrime(c.p)
	if err != nil {
		return errors.WithMessage(err, "ec")
	}
	if !ok {
		return errors.Wrapf(ErrNonPrimeModulus, "modulus %s", c.p)
	}
	return nil
}
