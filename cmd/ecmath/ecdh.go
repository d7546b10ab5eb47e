package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/pkg/ecdh"
)

func newECDHCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecdh",
		Short: "Run a Diffie-Hellman exchange between two private keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nc, err := a.namedCurve()
			if err != nil {
				return err
			}
			kx, err := ecdh.New(nc.Curve, nc.G)
			if err != nil {
				return err
			}

			privA, err := parseInt("private-a", a.v.GetString("private-a"))
			if err != nil {
				return err
			}
			privB, err := parseInt("private-b", a.v.GetString("private-b"))
			if err != nil {
				return err
			}

			pubA, err := kx.GeneratePublicKey(privA)
			if err != nil {
				return errors.WithMessage(err, "party A")
			}
			pubB, err := kx.GeneratePublicKey(privB)
			if err != nil {
				return errors.WithMessage(err, "party B")
			}

			secretA, err := kx.CalculateSharedSecret(privA, pubB)
			if err != nil {
				return errors.WithMessage(err, "party A")
			}
			secretB, err := kx.CalculateSharedSecret(privB, pubA)
			if err != nil {
				return errors.WithMessage(err, "party B")
			}
			if !secretA.Equal(secretB) {
				return errors.Errorf("shared secrets differ: %s != %s", secretA, secretB)
			}

			a.log.Info("key exchange complete",
				zap.String("curve", nc.Name),
				zap.Bool("identity", secretA.IsIdentity()),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "curve: %s\n", nc.Curve)
			fmt.Fprintf(out, "generator: %s\n", nc.G)
			fmt.Fprintf(out, "public key A: %s\n", pubA)
			fmt.Fprintf(out, "public key B: %s\n", pubB)
			fmt.Fprintf(out, "shared secret: %s\n", secretA)
			return nil
		},
	}

	addCurveFlags(cmd.Flags())
	cmd.Flags().String("private-a", "", "private key of party A")
	cmd.Flags().String("private-b", "", "private key of party B")
	return cmd
}
