package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-ecarith/internal/crypto/rsa"
)

func newRSACmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa <input> <output> <p> <q>",
		Short: "Encrypt or decrypt a file with RSA keys derived from two primes",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			p, err := parseInt("p", args[2])
			if err != nil {
				return err
			}
			q, err := parseInt("q", args[3])
			if err != nil {
				return err
			}

			// A fallback exponent is drawn from a stream seeded by p and q so
			// that encryption and decryption derive the same key pair.
			seed := sha3.NewShake256()
			seed.Write([]byte(p.String() + ":" + q.String()))
			public, private, err := rsa.GenerateKeys(seed, p, q)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "reading %s", in)
			}

			decrypt := a.v.GetBool("decrypt")
			var result []byte
			if decrypt {
				result, err = rsa.Decrypt(data, private)
			} else {
				result, err = rsa.Encrypt(data, public)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, result, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", out)
			}

			a.log.Info("rsa done",
				zap.Bool("decrypt", decrypt),
				zap.Int("in_bytes", len(data)),
				zap.Int("out_bytes", len(result)),
				zap.Int("modulus_bits", public.Modulus.BitLen()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(result), out)
			return nil
		},
	}

	cmd.Flags().BoolP("decrypt", "d", false, "decrypt the input instead of encrypting")
	return cmd
}
