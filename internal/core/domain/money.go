package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyExponents lists ISO 4217 currencies whose minor unit is not 1/100.
var currencyExponents = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0, "KRW": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnitExponent returns the number of decimal places of the currency's
// minor unit.
func MinorUnitExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.Value, -MinorUnitExponent(a.Currency))
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Decimal().StringFixed(MinorUnitExponent(a.Currency)), strings.ToUpper(a.Currency))
}

// ParseAmount converts a major-unit string such as "10.50" into minor units.
func ParseAmount(major, currency string) (Amount, error) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", major, err)
	}
	exp := MinorUnitExponent(currency)
	minor := d.Shift(exp)
	if !minor.Equal(minor.Truncate(0)) {
		return Amount{}, fmt.Errorf("amount %q has more than %d decimal places for %s", major, exp, currency)
	}
	return Amount{Value: minor.IntPart(), Currency: strings.ToUpper(currency)}, nil
}
