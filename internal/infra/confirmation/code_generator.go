// Package confirmation generates pickup confirmation codes.
package confirmation

import (
	"crypto/rand"
	"io"
	"math/big"

	"harvest/internal/domain/service"
	"harvest/internal/errors"
)

const (
	// CodeLength is the number of characters in a confirmation code.
	CodeLength = 6
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type randomCodeGenerator struct {
	source io.Reader
}

// NewCodeGenerator draws each character uniformly from A-Z0-9 using crypto/rand.
func NewCodeGenerator() service.CodeGenerator {
	return &randomCodeGenerator{source: rand.Reader}
}

func (g *randomCodeGenerator) Generate() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	code := make([]byte, CodeLength)
	for i := range code {
		n, err := rand.Int(g.source, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
