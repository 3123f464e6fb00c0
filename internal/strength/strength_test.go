package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		want     Level
	}{
		{"empty", "", 0, Weak},
		{"lower only", "abc", 1, Weak},
		{"long lower", "abcdefgh", 2, Weak},
		{"upper lower long", "Abcdefgh", 3, Medium},
		{"short all classes", "Ab1!", 4, Medium},
		{"all five", "Abcdefg1!", 5, Strong},
		{"digits only long", "12345678", 2, Weak},
		{"punctuation only", "!!!!", 1, Weak},
		{"space is not punctuation", "Abcdefg1 ", 4, Medium},
		{"unicode letters", "Ünïcödé1", 4, Medium},
		{"seven runes", "Abc12!x", 4, Medium},
		{"multibyte counted as runes", "Ääääää1!", 5, Strong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Evaluate(tt.password)
			assert.Equal(t, tt.score, c.Score())
			assert.Equal(t, tt.want, Classify(tt.password))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for _, p := range []string{"", "abc", "Abcdefgh", "Abcdefg1!"} {
		assert.Equal(t, Classify(p), Classify(p))
	}
}

func TestEvaluate_Predicates(t *testing.T) {
	assert.Equal(t, Criteria{Length: true, Upper: true, Lower: true, Digit: true, Special: true}, Evaluate("Abcdefg1!"))
	assert.Equal(t, Criteria{Lower: true}, Evaluate("abc"))
	assert.Equal(t, Criteria{Special: true}, Evaluate("~"))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "Weak", Weak.String())
	assert.Equal(t, "Medium", Medium.String())
	assert.Equal(t, "Strong", Strong.String())
	assert.Equal(t, "Weak", Level(42).String())
}

func TestCriteria_Missing(t *testing.T) {
	assert.Empty(t, Evaluate("Abcdefg1!").Missing())
	assert.Equal(t, []string{
		"at least 8 characters",
		"an uppercase letter",
		"a digit",
		"a punctuation character",
	}, Evaluate("abc").Missing())
}
