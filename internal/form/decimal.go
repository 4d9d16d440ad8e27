package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyNumber   = errors.New("number is empty")
	ErrInvalidNumber = errors.New("not a valid number")
)

// ParseDecimal converts user-entered text into a decimal. It never falls
// back to zero: blank or malformed input is an error.
func ParseDecimal(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, ErrEmptyNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return d, nil
}

var (
	ErrTooManyDecimals = errors.New("too many decimal places")
	ErrOutOfRange      = errors.New("number out of range")
)

// CheckPrecision reports whether d fits a NUMERIC(digits, scale) column
// without rounding.
func CheckPrecision(d decimal.Decimal, digits, scale int) error {
	if !d.Equal(d.Truncate(int32(scale))) {
		return fmt.Errorf("%w: at most %d", ErrTooManyDecimals, scale)
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, int32(digits-scale))) {
		return fmt.Errorf("%w: at most %d integer digits", ErrOutOfRange, digits-scale)
	}
	return nil
}
