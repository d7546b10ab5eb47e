// Package primes implements primality checks and small factorization helpers.
package primes

import (
	"math/big"

	"github.com/pkg/errors"
)

// MillerRabinRounds is the number of Miller-Rabin rounds used by IsPrime.
const MillerRabinRounds = 32

var (
	// ErrOutOfRange is returned for inputs below 2.
	ErrOutOfRange = errors.New("primes: n must be greater than 1")

	// ErrNotSafePrime is returned by FullPeriodGenerators for an input that is
	// not a safe prime.
	ErrNotSafePrime = errors.New("primes: n is not a safe prime")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

func validate(n *big.Int) error {
	if n == nil || n.Cmp(two) < 0 {
		return ErrOutOfRange
	}
	return nil
}

// IsPrime reports whether n is prime. The test is probabilistic with an error
// probability below 4^-32; inputs below 2^64 are always answered correctly.
func IsPrime(n *big.Int) (bool, error) {
	if err := validate(n); err != nil {
		return false, err
	}
	return n.ProbablyPrime(MillerRabinRounds), nil
}

// SophieGermain returns (n-1)/2, the prime q paired with a safe prime n.
func SophieGermain(n *big.Int) *big.Int {
	q := new(big.Int).Sub(n, one)
	return q.Rsh(q, 1)
}

// IsSafePrime reports whether (n-1)/2 is prime. Callers are expected to have
// checked that n itself is prime; 2 and 3 are never safe primes.
func IsSafePrime(n *big.Int) (bool, error) {
	if err := validate(n); err != nil {
		return false, err
	}
	if n.Cmp(big.NewInt(3)) <= 0 {
		return false, nil
	}
	return SophieGermain(n).ProbablyPrime(MillerRabinRounds), nil
}

// Factorize returns the prime factors of n in ascending order, with
// multiplicity, by trial division. Running time is O(√p) where p is the
// second largest prime factor, so it is only practical for modest inputs.
func Factorize(n *big.Int) ([]*big.Int, error) {
	if err := validate(n); err != nil {
		return nil, err
	}

	rem := new(big.Int).Set(n)
	var factors []*big.Int

	for rem.Bit(0) == 0 {
		factors = append(factors, big.NewInt(2))
		rem.Rsh(rem, 1)
	}

	i := big.NewInt(3)
	sq := new(big.Int)
	q, r := new(big.Int), new(big.Int)
	for sq.Mul(i, i).Cmp(rem) <= 0 {
		for {
			q.QuoRem(rem, i, r)
			if r.Sign() != 0 {
				break
			}
			factors = append(factors, new(big.Int).Set(i))
			rem.Set(q)
		}
		i.Add(i, two)
	}

	if rem.Cmp(one) > 0 {
		factors = append(factors, rem)
	}
	return factors, nil
}

// FullPeriodGenerators returns the integers g in [1, limit] whose
// multiplicative order modulo the safe prime n is n-1. With n = 2q+1 the only
// possible orders are 1, 2, q and n-1, so it suffices to rule out the first
// three.
func FullPeriodGenerators(n *big.Int, limit int64) ([]int64, error) {
	ok, err := IsPrime(n)
	if err != nil {
		return nil, err
	}
	if ok {
		ok, err = IsSafePrime(n)
		if err != nil {
			return nil, err
		}
	}
	if !ok {
		return nil, errors.Wrapf(ErrNotSafePrime, "n=%s", n)
	}

	q := SophieGermain(n)
	exps := []*big.Int{one, two, q}

	var gens []int64
	r := new(big.Int)
	for g := int64(1); g <= limit; g++ {
		base := big.NewInt(g)
		if r.Mod(base, n).Sign() == 0 {
			continue
		}
		full := true
		for _, e := range exps {
			if r.Exp(base, e, n).Cmp(one) == 0 {
				full = false
				break
			}
		}
		if full {
			gens = append(gens, g)
		}
	}
	return gens, nil
}
