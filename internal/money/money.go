// Package money converts between decimal amounts and the integer minor units
// that payment providers use.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrCurrencyUnknown   = errors.New("the currency is not a known ISO 4217 currency code")
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")
	ErrAmountTooPrecise  = errors.New("the amount has more decimal places than the currency supports")
	ErrAmountOutOfRange  = errors.New("the amount is too large")
)

// Largest amount in minor units that is accepted for a single payment
var maxMinorUnits = decimal.NewFromInt(99_999_999)

// Currency is an ISO 4217 currency with the number of decimal places
// used for cash-less payments.
type Currency struct {
	unit  currency.Unit
	scale int32
}

// ParseCurrency parses an ISO 4217 code, case insensitive.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrCurrencyUnknown, code)
	}

	scale, _ := currency.Standard.Rounding(unit)

	return Currency{
		unit:  unit,
		scale: int32(scale),
	}, nil
}

// MustParseCurrency is like ParseCurrency but panics on unknown codes.
func MustParseCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}

	return c
}

// Code returns the upper case ISO code, e.g. "EUR".
func (c Currency) Code() string {
	return c.unit.String()
}

// Scale is the number of decimal places of the currency, e.g. 2 for EUR
// and 0 for JPY.
func (c Currency) Scale() int32 {
	return c.scale
}

// FromMinorUnits converts an amount in minor units (cents) to a decimal.
func (c Currency) FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -c.scale)
}

// ToMinorUnits converts a decimal amount to minor units.
//
// Amounts that cannot be represented exactly are rejected instead of rounded,
// a donor must never be charged a different amount than requested.
func (c Currency) ToMinorUnits(amount decimal.Decimal) (int64, error) {
	err := c.Validate(amount)
	if err != nil {
		return 0, err
	}

	return amount.Shift(c.scale).IntPart(), nil
}

// Validate checks that the amount is positive and representable in
// the currency.
func (c Currency) Validate(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !amount.Equal(amount.Truncate(c.scale)) {
		return fmt.Errorf("%w: %s allows %d decimal places", ErrAmountTooPrecise, c.Code(), c.scale)
	}

	if amount.Shift(c.scale).GreaterThan(maxMinorUnits) {
		return ErrAmountOutOfRange
	}

	return nil
}
