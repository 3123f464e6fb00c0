package passgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	require.Len(t, Alphabet, 94)
	require.Len(t, Punctuation, 32)

	seen := make(map[rune]struct{}, len(Alphabet))
	for _, r := range Alphabet {
		_, dup := seen[r]
		require.False(t, dup, "duplicate character %q", r)
		seen[r] = struct{}{}
	}
}

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for l := 1; l <= 1000; l++ {
		got, err := Generate(l)
		require.NoError(t, err)
		require.Len(t, got, l)
		for _, r := range got {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("character %q outside alphabet (length %d)", r, l)
			}
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, l := range []int{0, -1, -50} {
		got, err := Generate(l)
		require.ErrorIs(t, err, common.ErrInvalidArgument)
		assert.Empty(t, got)
	}
}

func TestGenerate_SuccessiveCallsDiffer(t *testing.T) {
	a, err := Generate(32)
	require.NoError(t, err)
	b, err := Generate(32)
	require.NoError(t, err)

	// 94^-32 chance of a false failure
	assert.NotEqual(t, a, b)
}

func TestGenerate_CoversCharacterClasses(t *testing.T) {
	got, err := Generate(5000)
	require.NoError(t, err)

	assert.True(t, strings.ContainsAny(got, Letters[:26]), "upper")
	assert.True(t, strings.ContainsAny(got, Letters[26:]), "lower")
	assert.True(t, strings.ContainsAny(got, Digits), "digits")
	assert.True(t, strings.ContainsAny(got, Punctuation), "punctuation")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_RandomSourceFailure(t *testing.T) {
	old := randReader
	randReader = failingReader{}
	t.Cleanup(func() { randReader = old })

	_, err := Generate(8)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrInvalidArgument)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, MinUILength},
		{0, MinUILength},
		{4, 4},
		{12, 12},
		{50, 50},
		{51, MaxUILength},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.in), "Clamp(%d)", tt.in)
	}
}
