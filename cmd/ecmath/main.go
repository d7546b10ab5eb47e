// Command ecmath exposes the curve, key-exchange, RSA, primality and SHA3
// utilities of this module on the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ecmath: %v\n", err)
		os.Exit(1)
	}
}
