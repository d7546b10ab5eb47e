package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/internal/crypto/primes"
)

const generatorSearchLimit = 20

func newPrimesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes <n>",
		Short: "Report primality, factors and safe-prime properties of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if a.v.GetBool("factor") {
				factors, err := primes.Factorize(n)
				if err != nil {
					return err
				}
				if len(factors) > 1 {
					fmt.Fprintf(out, "the prime factors of %s are:\n%v\n", n, factors)
					return nil
				}
				fmt.Fprintf(out, "%s is prime\n", n)
			} else {
				ok, err := primes.IsPrime(n)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(out, "%s is not prime\n", n)
					return nil
				}
				fmt.Fprintf(out, "%s is prime\n", n)
			}

			safe, err := primes.IsSafePrime(n)
			if err != nil {
				return err
			}
			if !safe {
				fmt.Fprintf(out, "%s is not a safe prime\n", n)
				return nil
			}
			fmt.Fprintf(out, "%s is a safe prime\n", n)
			fmt.Fprintf(out, "The Sophie Germain prime is %s\n", primes.SophieGermain(n))

			gens, err := primes.FullPeriodGenerators(n, generatorSearchLimit)
			if err != nil {
				return err
			}
			for _, g := range gens {
				fmt.Fprintf(out, "%d is a full-period generator\n", g)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("factor", "f", false, "print the prime factors of n")
	return cmd
}
