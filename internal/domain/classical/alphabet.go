package classical

import (
	"fmt"
	"unicode"
)

// Alphabet is an ordered, duplicate-free sequence of characters. A character's index is its
// canonical position in [0, Len()).
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from s. Duplicate characters are rejected.
func NewAlphabet(s string) (Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) == 0 {
		return Alphabet{}, fmt.Errorf("%w: alphabet must not be empty", ErrInvalidInput)
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if _, exists := index[r]; exists {
			return Alphabet{}, fmt.Errorf("%w: duplicate character %q in alphabet", ErrInvalidInput, r)
		}
		index[r] = i
	}

	return Alphabet{symbols: symbols, index: index}, nil
}

// MustAlphabet is like NewAlphabet but panics on error. Intended for package-level presets.
func MustAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Dedup returns the characters of s in first-occurrence order with repeats removed.
func Dedup(s string) string {
	seen := make(map[rune]struct{})
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return string(out)
}

// Len returns the ring size n.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// String returns the characters in order.
func (a Alphabet) String() string {
	return string(a.symbols)
}

// At returns the character at position i, which must be in [0, Len()).
func (a Alphabet) At(i int) rune {
	return a.symbols[i]
}

// IndexOf returns the position of r, case-sensitive.
func (a Alphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Rotate returns the alphabet cyclically shifted left by amount. Any integer is accepted;
// amount is normalized into [0, n) first.
func (a Alphabet) Rotate(amount int) Alphabet {
	n := len(a.symbols)
	if n == 0 {
		return a
	}
	r := normalize(amount, n)
	if r == 0 {
		return a
	}

	symbols := make([]rune, 0, n)
	symbols = append(symbols, a.symbols[r:]...)
	symbols = append(symbols, a.symbols[:r]...)

	index := make(map[rune]int, n)
	for i, s := range symbols {
		index[s] = i
	}
	return Alphabet{symbols: symbols, index: index}
}

// ToLower maps every character to its lowercase form. It is used to derive the lowercase case
// class of an uppercase alphabet.
func (a Alphabet) ToLower() (Alphabet, error) {
	lower := make([]rune, len(a.symbols))
	for i, r := range a.symbols {
		lower[i] = unicode.ToLower(r)
	}
	return NewAlphabet(string(lower))
}

func normalize(v, n int) int {
	return ((v % n) + n) % n
}

func isUpper(r rune) bool {
	return r == unicode.ToUpper(r)
}

func matchCase(r rune, upper bool) rune {
	if upper {
		return r
	}
	return unicode.ToLower(r)
}
