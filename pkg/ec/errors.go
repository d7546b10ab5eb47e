package ec

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/modular"
)

// Errors returned by curve operations. Use errors.Is to match them; most
// returned errors carry additional context.
var (
	// ErrInvalidType reports a missing (nil) argument.
	ErrInvalidType = errors.New("ec: invalid argument type")

	// ErrInvalidValue reports an argument of the right type with a bad value.
	ErrInvalidValue = errors.New("ec: invalid argument value")

	// ErrNotOnCurve reports a point that does not satisfy the curve equation.
	// It is a value error.
	ErrNotOnCurve = errors.WithMessage(ErrInvalidValue, "point not on curve")

	// ErrNoInverse reports a modular inverse that does not exist. On a curve
	// over a prime field this only happens when the curve is misconfigured.
	ErrNoInverse = modular.ErrNoInverse

	ErrInvalidCurve    = errors.New("ec: invalid curve parameters")
	ErrNonPrimeModulus = errors.New("ec: modulus is not prime")
	ErrNoSquareRoot    = errors.New("ec: no square root modulo the field prime")
)
