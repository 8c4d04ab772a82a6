package classical

import (
	"strconv"
	"strings"
	"unicode"
)

// PolybiusSquare holds the mutually inverse mappings between characters and two-digit
// coordinate tokens of a 5x5 or 6x6 grid.
type PolybiusSquare struct {
	size   int
	encode map[rune]string
	decode map[string]rune
}

// NewPolybiusSquare de-duplicates alphabet and fills the grid row-major with 1-indexed rows and
// columns. A 25-character alphabet yields a 5x5 grid; any other length is laid out on a 6x6
// grid. Sizing the alphabet correctly is the caller's responsibility.
func NewPolybiusSquare(alphabet string) *PolybiusSquare {
	symbols := []rune(Dedup(alphabet))
	size := 6
	if len(symbols) == 25 {
		size = 5
	}

	sq := &PolybiusSquare{
		size:   size,
		encode: make(map[rune]string, len(symbols)),
		decode: make(map[string]rune, len(symbols)),
	}
	for k, r := range symbols {
		if k >= size*size {
			break
		}
		token := strconv.Itoa(k/size+1) + strconv.Itoa(k%size+1)
		sq.encode[r] = token
		sq.decode[token] = r
	}

	return sq
}

// Size returns the grid dimension (5 or 6).
func (s *PolybiusSquare) Size() int {
	return s.size
}

// Token returns the coordinate token for r, if mapped.
func (s *PolybiusSquare) Token(r rune) (string, bool) {
	t, ok := s.encode[r]
	return t, ok
}

// Symbol returns the character for token, if mapped.
func (s *PolybiusSquare) Symbol(token string) (rune, bool) {
	r, ok := s.decode[token]
	return r, ok
}

// Encode uppercases every character and replaces it with its coordinate token. Unmapped
// characters pass through. Items are joined with single spaces and runs of spaces collapse.
func (s *PolybiusSquare) Encode(text string) string {
	items := make([]string, 0, len(text))
	for _, r := range text {
		if t, ok := s.encode[unicode.ToUpper(r)]; ok {
			items = append(items, t)
			continue
		}
		items = append(items, string(r))
	}

	return collapseSpaces(strings.Join(items, " "))
}

// Decode splits tokens on any whitespace and maps each token back to its character. Unmapped
// tokens pass through; results are concatenated without separators.
func (s *PolybiusSquare) Decode(tokens string) string {
	var sb strings.Builder
	for _, t := range strings.Fields(tokens) {
		if r, ok := s.decode[t]; ok {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(t)
	}
	return sb.String()
}

func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
