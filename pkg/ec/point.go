package ec

import (
	"fmt"
	"math/big"
)

// Point is an immutable point on a short Weierstrass curve: either the
// identity element (the point at infinity) or an affine (x, y) pair.
//
// The zero value is the identity. The affine point (0, 0) is an ordinary
// point and is never confused with the identity.
type Point struct {
	x, y   *big.Int
	affine bool
}

// Identity returns the neutral element of the group.
func Identity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). The coordinates are copied; a nil
// coordinate is read as zero.
func NewPoint(x, y *big.Int) Point {
	return Point{x: clone(x), y: clone(y), affine: true}
}

// NewPointInt64 is NewPoint for small coordinates.
func NewPointInt64(x, y int64) Point {
	return Point{x: big.NewInt(x), y: big.NewInt(y), affine: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return !p.affine
}

// X returns a copy of the x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are both the identity or are affine points
// with identical coordinates.
func (p Point) Equal(q Point) bool {
	if p.affine != q.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.affine {
		return "Point(identity)"
	}
	return fmt.Sprintf("Point(%s,%s)", p.x, p.y)
}

func clone(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
