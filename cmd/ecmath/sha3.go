package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/crypto/digest"
)

func newSHA3Cmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sha3 <file>",
		Short: "Print the SHA3-256 digest of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := digest.SumFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("hashed file", zap.String("file", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(sum), args[0])
			return nil
		},
	}
}
