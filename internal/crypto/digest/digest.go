// Package digest computes SHA3-256 digests of byte streams and files.
package digest

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Size is the length of a SHA3-256 digest in bytes.
const Size = 32

// Sum256 returns the SHA3-256 digest of everything read from r.
func Sum256(r io.Reader) ([]byte, error) {
	h := sha3.New256()
	if _, err := io.Copy(h, r); err != nil {
		return nil, errors.Wrap(err, "digest: reading input")
	}
	return h.Sum(nil), nil
}

// SumFile returns the SHA3-256 digest of the file at path.
func SumFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "digest: opening %s", path)
	}
	defer f.Close()

	return Sum256(f)
}
