package classical

import "strings"

// Caesar shifts every character found in one of the parallel case classes by shift positions
// within that class. Characters outside all classes are copied unchanged. Any integer shift is
// accepted; decryption is Caesar with the negated shift.
func Caesar(text string, shift int, classes ...Alphabet) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		sb.WriteRune(caesarRune(r, shift, classes))
	}

	return sb.String()
}

func caesarRune(r rune, shift int, classes []Alphabet) rune {
	for _, class := range classes {
		n := class.Len()
		if n == 0 {
			continue
		}
		if i, ok := class.IndexOf(r); ok {
			return class.At((i + normalize(shift, n)) % n)
		}
	}
	return r
}
