package classical

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var integerLiteral = regexp.MustCompile(`^-?\d+$`)

// IsIntegerLiteral reports whether s, after trimming surrounding whitespace, is an optional
// minus sign followed by one or more decimal digits.
func IsIntegerLiteral(s string) bool {
	return integerLiteral.MatchString(strings.TrimSpace(s))
}

// ParseInteger parses a required integer field. name is used in the error message.
func ParseInteger(s, name string) (*big.Int, error) {
	v, ok := ParseOptionalInteger(s)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be integer", ErrInvalidInput, name)
	}
	return v, nil
}

// ParseOptionalInteger parses an optional integer field. The second result is false when the
// field is empty or not an integer literal.
func ParseOptionalInteger(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if !integerLiteral.MatchString(s) {
		return nil, false
	}
	v, ok := new(big.Int).SetString(s, 10)
	return v, ok
}

// ParseShift parses a shift or rotation field permissively: anything that is not an integer
// literal yields 0. Values beyond the int range are reduced modulo n when n > 0, which leaves
// every rotation over an n-symbol alphabet unchanged.
func ParseShift(s string, n int) int {
	v, ok := ParseOptionalInteger(s)
	if !ok {
		return 0
	}
	if v.IsInt64() && int64(int(v.Int64())) == v.Int64() {
		return int(v.Int64())
	}
	if n <= 0 {
		return 0
	}
	return int(new(big.Int).Rem(v, big.NewInt(int64(n))).Int64())
}
