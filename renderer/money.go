package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter formats amounts for display, optionally in a currency.
// Its zero value formats plain numbers with two decimals.
type Formatter struct {
	currency string
}

// NewFormatter returns a Formatter for the ISO 4217 currency code.
// An empty code formats plain numbers.
func NewFormatter(code string) (Formatter, error) {
	if code == "" {
		return Formatter{}, nil
	}
	if money.GetCurrency(code) == nil {
		return Formatter{}, fmt.Errorf("unknown currency %q", code)
	}
	return Formatter{currency: code}, nil
}

// Currency returns the currency code, or "" for plain numbers.
func (f Formatter) Currency() string { return f.currency }

// Format returns v rounded to the currency fraction (2 decimals without
// currency) and formatted with the currency symbol.
func (f Formatter) Format(v float64) string {
	d := decimal.NewFromFloat(v)
	if f.currency == "" {
		return d.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, f.currency).Currency()
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// Percent formats an annual rate given in percent.
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
