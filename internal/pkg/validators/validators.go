package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// Tag names registered by Register.
const (
	IntegerLiteralTag = "integerliteral"
	AlphabetKindTag   = "alphabetkind"
)

// IntegerLiteralValidation accepts strings made of an optional minus sign and decimal digits,
// surrounding whitespace ignored.
func IntegerLiteralValidation(fl validator.FieldLevel) bool {
	return classical.IsIntegerLiteral(fl.Field().String())
}

// AlphabetKindValidation accepts the alphabet identifiers known to the cipher processors.
func AlphabetKindValidation(fl validator.FieldLevel) bool {
	_, _, ok := classical.CaseClasses(fl.Field().String())
	return ok
}

// Register installs the custom validation tags on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(IntegerLiteralTag, IntegerLiteralValidation); err != nil {
		return fmt.Errorf("failed to register %s: %w", IntegerLiteralTag, err)
	}
	if err := v.RegisterValidation(AlphabetKindTag, AlphabetKindValidation); err != nil {
		return fmt.Errorf("failed to register %s: %w", AlphabetKindTag, err)
	}
	return nil
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}
