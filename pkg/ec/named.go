package ec

import (
	"crypto/elliptic"
	"math/big"
	"sort"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// NamedCurve bundles a well-known curve with its generator and the order of
// that generator.
type NamedCurve struct {
	Name  string
	Curve *Curve
	G     Point
	N     *big.Int
}

// ErrUnknownCurve is returned by Lookup for an unregistered name.
var ErrUnknownCurve = errors.New("ec: unknown curve")

var named = map[string]func() *NamedCurve{
	"tiny17":    Tiny17,
	"secp256k1": Secp256k1,
	"p256":      P256,
}

// Tiny17 returns the textbook curve y² = x³ + 2x + 2 over F_17 with
// generator (5, 1) of order 19.
func Tiny17() *NamedCurve {
	return &NamedCurve{
		Name:  "tiny17",
		Curve: &Curve{a: big.NewInt(2), b: big.NewInt(2), p: big.NewInt(17)},
		G:     NewPointInt64(5, 1),
		N:     big.NewInt(19),
	}
}

// Secp256k1 returns the Koblitz curve y² = x³ + 7 used by Bitcoin.
func Secp256k1() *NamedCurve {
	params := secp256k1.S256().Params()
	return fromParams("secp256k1", new(big.Int), params)
}

// P256 returns NIST P-256, for which a = p - 3.
func P256() *NamedCurve {
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, three)
	return fromParams("p256", a, params)
}

// Lookup returns the named curve registered under name (case-insensitive).
func Lookup(name string) (*NamedCurve, error) {
	ctor, ok := named[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fromParams(name string, a *big.Int, params *elliptic.CurveParams) *NamedCurve {
	return &NamedCurve{
		Name:  name,
		Curve: &Curve{a: a, b: new(big.Int).Set(params.B), p: new(big.Int).Set(params.P)},
		G:     NewPoint(params.Gx, params.Gy),
		N:     new(big.Int).Set(params.N),
	}
}
