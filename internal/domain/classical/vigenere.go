package classical

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// StepTrace is one row of a Vigenère computation trace.
type StepTrace struct {
	Index     int    `json:"index"`
	Original  string `json:"original"`
	Key       string `json:"key"`
	Shift     string `json:"shift"`
	Encrypted string `json:"encrypted"`
}

// Skipped reports whether the row belongs to a character outside the alphabet.
func (s StepTrace) Skipped() bool {
	return s.Key == TraceSentinel
}

// Vigenere encrypts or decrypts text with key over alphabet. The key cursor advances only on
// characters that belong to the alphabet (compared in uppercase); everything else passes
// through. Output characters mirror the case of the input characters.
func Vigenere(text, key string, encrypt bool, alphabet Alphabet) (string, error) {
	keyPositions, err := keyShifts(key, alphabet)
	if err != nil {
		return "", err
	}

	n := alphabet.Len()
	var sb strings.Builder
	sb.Grow(len(text))

	cursor := 0
	for _, r := range text {
		target, ok := alphabet.IndexOf(unicode.ToUpper(r))
		if !ok {
			sb.WriteRune(r)
			continue
		}

		k := keyPositions[cursor%len(keyPositions)]
		var pos int
		if encrypt {
			pos = (target + k) % n
		} else {
			pos = (target - k + n) % n
		}
		sb.WriteRune(matchCase(alphabet.At(pos), isUpper(r)))
		cursor++
	}

	return sb.String(), nil
}

// VigenereTrace runs the encryption path of Vigenere and records one StepTrace per input
// character. Characters outside the alphabet produce a row with sentinel key and shift that
// echoes the character unchanged.
func VigenereTrace(text, key string, alphabet Alphabet) ([]StepTrace, error) {
	keyPositions, err := keyShifts(key, alphabet)
	if err != nil {
		return nil, err
	}
	keyRunes := []rune(strings.ToUpper(key))

	n := alphabet.Len()
	rows := make([]StepTrace, 0, len(text))

	cursor := 0
	for i, r := range []rune(text) {
		target, ok := alphabet.IndexOf(unicode.ToUpper(r))
		if !ok {
			rows = append(rows, StepTrace{
				Index:     i + 1,
				Original:  string(r),
				Key:       TraceSentinel,
				Shift:     TraceSentinel,
				Encrypted: string(r),
			})
			continue
		}

		slot := cursor % len(keyPositions)
		shift := keyPositions[slot]
		upper := isUpper(r)
		rows = append(rows, StepTrace{
			Index:     i + 1,
			Original:  string(r),
			Key:       string(matchCase(keyRunes[slot], upper)),
			Shift:     strconv.Itoa(shift),
			Encrypted: string(matchCase(alphabet.At((target+shift)%n), upper)),
		})
		cursor++
	}

	return rows, nil
}

// VigenereRotation converts the raw ROT field into the rotation applied to the alphabet.
// A positive ROT rotates the alphabet by its negation; malformed input means no rotation.
func VigenereRotation(raw string, n int) int {
	if n <= 0 {
		return 0
	}
	return normalize(-(ParseShift(raw, n) % n), n)
}

// FormatTraceTSV renders trace rows as tab-separated text with a header line.
func FormatTraceTSV(rows []StepTrace) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join([]string{"#", "Orig", "Key", "Shift", "Enc"}, "\t"))
	for _, r := range rows {
		lines = append(lines, strings.Join([]string{strconv.Itoa(r.Index), r.Original, r.Key, r.Shift, r.Encrypted}, "\t"))
	}
	return strings.Join(lines, "\n")
}

func keyShifts(key string, alphabet Alphabet) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key required", ErrInvalidKey)
	}

	upper := []rune(strings.ToUpper(key))
	shifts := make([]int, len(upper))
	for i, r := range upper {
		pos, ok := alphabet.IndexOf(r)
		if !ok {
			return nil, fmt.Errorf("%w: key contains invalid character %q", ErrInvalidKey, r)
		}
		shifts[i] = pos
	}

	return shifts, nil
}
