// Package passgen generates random passwords from a fixed printable alphabet
// using crypto/rand.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

const (
	Letters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Alphabet is the 94-character pool every generated character is drawn from.
	Alphabet = Letters + Digits + Punctuation

	// Bounds offered by interactive callers. Generate itself accepts any
	// positive length.
	MinUILength   = 4
	MaxUILength   = 50
	DefaultLength = 12
)

// randReader is a test seam for crypto/rand.Reader.
var randReader io.Reader = rand.Reader

// Generate returns a password of exactly length characters, each drawn
// uniformly from Alphabet. A non-positive length yields an error wrapping
// common.ErrInvalidArgument.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: password length must be positive, got %d", common.ErrInvalidArgument, length)
	}

	max := big.NewInt(int64(len(Alphabet)))

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(randReader, max)
		if err != nil {
			return "", fmt.Errorf("random source: %w", err)
		}
		sb.WriteByte(Alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// Clamp limits length to [MinUILength, MaxUILength].
func Clamp(length int) int {
	if length < MinUILength {
		return MinUILength
	}
	if length > MaxUILength {
		return MaxUILength
	}
	return length
}
