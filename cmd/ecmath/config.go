package main

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

const customCurveName = "custom"

func addCurveFlags(fs *pflag.FlagSet) {
	fs.String("curve", "tiny17", "named curve (tiny17, secp256k1, p256)")
	fs.String("a", "", "custom curve coefficient a")
	fs.String("b", "", "custom curve coefficient b")
	fs.String("p", "", "custom curve field modulus; selects a custom curve when set")
	fs.String("gx", "", "custom generator x-coordinate")
	fs.String("gy", "", "custom generator y-coordinate")
}

// parseInt accepts decimal or 0x-prefixed hexadecimal integers.
func parseInt(name, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("%s: cannot parse integer %q", name, s)
	}
	return n, nil
}

// namedCurve returns the curve selected by configuration. A custom curve is
// used whenever p is configured.
func (a *app) namedCurve() (*ec.NamedCurve, error) {
	if a.v.GetString("p") == "" {
		nc, err := ec.Lookup(a.v.GetString("curve"))
		if err != nil {
			return nil, err
		}
		a.log.Debug("using named curve", zap.String("curve", nc.Name))
		return nc, nil
	}

	vals := make(map[string]*big.Int)
	for _, key := range []string{"a", "b", "p", "gx", "gy"} {
		s := a.v.GetString(key)
		if s == "" {
			return nil, errors.Errorf("custom curve requires %q", key)
		}
		n, err := parseInt(key, s)
		if err != nil {
			return nil, err
		}
		vals[key] = n
	}

	c, err := ec.New(vals["a"], vals["b"], vals["p"])
	if err != nil {
		return nil, err
	}
	g := ec.NewPoint(vals["gx"], vals["gy"])
	if !c.HasPoint(g) {
		return nil, errors.Wrapf(ec.ErrNotOnCurve, "generator %s", g)
	}

	a.log.Debug("using custom curve", zap.Stringer("curve", c), zap.Stringer("generator", g))
	return &ec.NamedCurve{Name: customCurveName, Curve: c, G: g}, nil
}
