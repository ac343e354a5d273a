package dca

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Validation is the result of validating raw user input.
type Validation struct {
	Valid   bool
	Message string // why the input was rejected, empty if valid
	Value   decimal.Decimal
}

func invalid(msg string) Validation { return Validation{Message: msg} }

// parseInput parses a user typed number. Both ',' and '.' are accepted as the
// decimal separator.
func parseInput(s string) (decimal.Decimal, Validation, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, invalid("value cannot be empty"), false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, invalid("enter a valid number"), false
	}
	return d, Validation{}, true
}

// ValidatePositiveDecimal validates an amount or a price typed by the user.
func ValidatePositiveDecimal(s string) Validation {
	d, v, ok := parseInput(s)
	if !ok {
		return v
	}
	if !d.IsPositive() {
		return invalid("value must be greater than zero")
	}
	return Validation{Valid: true, Value: d}
}

// ValidatePercent validates a percentage typed by the user, it must be in
// [0, 100].
func ValidatePercent(s string) Validation {
	d, v, ok := parseInput(s)
	if !ok {
		return v
	}
	if ValidDrawdown(d) != nil {
		return invalid("percentage must be between 0 and 100")
	}
	return Validation{Valid: true, Value: d}
}

// ValidateAssetName validates an asset name typed by the user. The value is
// always zero, only Valid and Message are meaningful.
func ValidateAssetName(s string) Validation {
	if err := ValidName(s); err != nil {
		return invalid(err.Error())
	}
	return Validation{Valid: true}
}
