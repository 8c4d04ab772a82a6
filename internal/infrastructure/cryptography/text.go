package cryptography

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// composeWithin composes a decomposed sequence (e.g. И + combining breve) only when the
// composed rune is accepted; every other sequence is copied unchanged so passthrough text
// keeps its exact code points.
func composeWithin(s string, accepts func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		n := norm.NFC.NextBoundaryInString(s, true)
		if n <= 0 {
			n = len(s)
		}
		segment := s[:n]
		s = s[n:]

		if utf8.RuneCountInString(segment) > 1 {
			composed := norm.NFC.String(segment)
			if r, size := utf8.DecodeRuneInString(composed); size == len(composed) && accepts(r) {
				b.WriteRune(r)
				continue
			}
		}
		b.WriteString(segment)
	}

	return b.String()
}

// inClasses accepts runes that belong to any of the alphabets.
func inClasses(classes ...classical.Alphabet) func(rune) bool {
	return func(r rune) bool {
		for _, c := range classes {
			if c.Contains(r) {
				return true
			}
		}
		return false
	}
}

// inUpper accepts runes whose upper case belongs to alphabet.
func inUpper(alphabet classical.Alphabet) func(rune) bool {
	return func(r rune) bool {
		return alphabet.Contains(unicode.ToUpper(r))
	}
}

func caseClasses(kind string) (classical.Alphabet, classical.Alphabet, error) {
	upper, lower, ok := classical.CaseClasses(kind)
	if !ok {
		return classical.Alphabet{}, classical.Alphabet{}, fmt.Errorf("%w: unknown alphabet %q", classical.ErrInvalidInput, kind)
	}
	return upper, lower, nil
}
