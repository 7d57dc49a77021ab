package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalPattern accepts unsigned decimal strings, surrounding whitespace allowed.
var decimalPattern = regexp.MustCompile(`^\s*\d+(\.\d+)?\s*$`)

// IsDecimal reports whether s is an unsigned decimal string.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(s)
}

// ParseDecimal parses a decimal string produced by a form field.
func ParseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Above reports whether value > min.
func Above(value, min decimal.Decimal) bool {
	return value.GreaterThan(min)
}

// Below reports whether value < max.
func Below(value, max decimal.Decimal) bool {
	return value.LessThan(max)
}

// Between reports whether min <= value <= max.
func Between(value, min, max decimal.Decimal) bool {
	return value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max)
}
