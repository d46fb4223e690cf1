// Package validation holds the syntactic checks applied to operator input before
// any request is dispatched.
package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zra-sdk/zra-demo/internal/types/business"
)

// IdentifierRegex matches a TPIN: exactly nine ASCII digits.
var IdentifierRegex = regexp.MustCompile(`^[0-9]{9}$`)

var (
	ErrInvalidIdentifier = errors.New("identifier must be exactly 9 digits")
	ErrInvalidAmount     = errors.New("amount must be a number greater than zero")
	ErrInvalidTaxType    = errors.New("tax type must be income or vat")
)

// ValidateIdentifier reports whether value is a well-formed TPIN.
func ValidateIdentifier(value string) bool {
	return IdentifierRegex.MatchString(value)
}

// ValidateAmount reports whether value parses as a finite number strictly greater
// than zero. Surrounding whitespace is ignored.
func ValidateAmount(value string) bool {
	_, err := ParseAmount(value)
	return err == nil
}

// ParseAmount parses an amount accepted by ValidateAmount.
func ParseAmount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// ValidateTaxType reports whether value names a supported tax category.
func ValidateTaxType(value string) bool {
	_, ok := business.ParseTaxCategory(value)
	return ok
}
