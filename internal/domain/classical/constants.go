package classical

// Alphabet kinds accepted by the front ends.
const (
	AlphabetEnglish   = "EN"
	AlphabetUkrainian = "UA"
)

// Built-in character sets.
const (
	EnglishUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	EnglishLower   = "abcdefghijklmnopqrstuvwxyz"
	UkrainianUpper = "АБВГҐДЕЄЖЗИІЇЙКЛМНОПРСТУФХЦЧШЩЬЮЯ"
	UkrainianLower = "абвгґдеєжзиіїйклмнопрстуфхцчшщьюя"

	// PolybiusEnglish is the 25-letter square alphabet (J omitted).
	PolybiusEnglish = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
	// PolybiusUkrainian fills the 6x6 square with the 33 letters plus three digits.
	PolybiusUkrainian = UkrainianUpper + "012"
)

// TraceSentinel marks key and shift cells of trace rows for characters outside the alphabet.
const TraceSentinel = "-"

// CaseClasses returns the parallel uppercase and lowercase alphabets for kind.
func CaseClasses(kind string) (upper, lower Alphabet, ok bool) {
	switch kind {
	case AlphabetEnglish:
		return MustAlphabet(EnglishUpper), MustAlphabet(EnglishLower), true
	case AlphabetUkrainian:
		return MustAlphabet(UkrainianUpper), MustAlphabet(UkrainianLower), true
	default:
		return Alphabet{}, Alphabet{}, false
	}
}

// PolybiusAlphabet returns the square alphabet for kind.
func PolybiusAlphabet(kind string) (string, bool) {
	switch kind {
	case AlphabetEnglish:
		return PolybiusEnglish, true
	case AlphabetUkrainian:
		return PolybiusUkrainian, true
	default:
		return "", false
	}
}
