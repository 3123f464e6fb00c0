// Package strength classifies passwords by which character classes they use.
//
// The score is structural, not entropy based: one point each for a length of
// at least 8 runes, an upper-case letter, a lower-case letter, a digit and a
// punctuation character from passgen.Punctuation. Five points is Strong,
// three or four is Medium, anything less is Weak.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/passkeeper/internal/passgen"
)

// MinLength is the rune count needed for the length point.
const MinLength = 8

type Level int

const (
	Weak Level = iota
	Medium
	Strong
)

func (l Level) String() string {
	switch l {
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	default:
		return "Weak"
	}
}

// Criteria records which predicates a password satisfies.
type Criteria struct {
	Length  bool
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

// Evaluate computes the five predicates for password.
func Evaluate(password string) Criteria {
	c := Criteria{Length: utf8.RuneCountInString(password) >= MinLength}

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.Upper = true
		case unicode.IsLower(r):
			c.Lower = true
		case unicode.IsDigit(r):
			c.Digit = true
		case strings.ContainsRune(passgen.Punctuation, r):
			c.Special = true
		}
	}

	return c
}

// Score counts satisfied predicates (0-5).
func (c Criteria) Score() int {
	n := 0
	for _, ok := range []bool{c.Length, c.Upper, c.Lower, c.Digit, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

// Level maps the score onto Weak, Medium or Strong.
func (c Criteria) Level() Level {
	switch s := c.Score(); {
	case s == 5:
		return Strong
	case s >= 3:
		return Medium
	default:
		return Weak
	}
}

// Missing lists human-readable hints for every unmet predicate.
func (c Criteria) Missing() []string {
	var out []string
	if !c.Length {
		out = append(out, "at least 8 characters")
	}
	if !c.Upper {
		out = append(out, "an uppercase letter")
	}
	if !c.Lower {
		out = append(out, "a lowercase letter")
	}
	if !c.Digit {
		out = append(out, "a digit")
	}
	if !c.Special {
		out = append(out, "a punctuation character")
	}
	return out
}

// Classify returns the strength level of password. It is total: every
// string, including the empty one, maps to exactly one level.
func Classify(password string) Level {
	return Evaluate(password).Level()
}
