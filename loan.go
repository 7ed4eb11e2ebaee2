package amortizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
)

// Loan holds the parameters of a loan: the borrowed amount, the number of
// monthly periods and the annual nominal interest rate in percent.
//
// A Loan is immutable, it can only be created by NewLoan or NewLoanFromValues
// that validate its parameters. The zero value is not a valid loan.
type Loan struct {
	amount       float64
	period       int
	interestRate float64
}

// MaxPeriod is the longest loan term accepted, in months (100 years).
const MaxPeriod = 1200

// NewLoan returns a validated loan.
//
// period must be in [1, MaxPeriod]. interestRate is a percentage: 9.5
// stands for 9.5% per year.
func NewLoan(amount float64, period int, interestRate float64) (Loan, error) {
	if period <= 0 || period > MaxPeriod {
		return Loan{}, fmt.Errorf("invalid period %d: %w", period, ErrInvalidPeriod)
	}
	if math.IsNaN(interestRate) || interestRate < 0 || interestRate > 100 {
		return Loan{}, fmt.Errorf("invalid interest rate %v: %w", interestRate, ErrInvalidInterestRate)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Loan{}, fmt.Errorf("invalid amount %v: %w", amount, ErrInvalidAmount)
	}
	return Loan{amount: amount, period: period, interestRate: interestRate}, nil
}

// NewLoanFromValues returns a validated loan from dynamically typed values,
// as produced by decoders.
//
// Every Go integer and float kind, json.Number and decimal.Decimal are
// accepted. Any other type, in particular a string, is rejected with
// ErrInvalidArgumentType. period must hold an integral value.
func NewLoanFromValues(amount, period, interestRate any) (Loan, error) {
	a, err := toFloat("amount", amount)
	if err != nil {
		return Loan{}, err
	}
	p, err := toFloat("period", period)
	if err != nil {
		return Loan{}, err
	}
	r, err := toFloat("interest_rate", interestRate)
	if err != nil {
		return Loan{}, err
	}
	if p != math.Trunc(p) || math.IsInf(p, 0) {
		return Loan{}, fmt.Errorf("period %v is not an integer: %w", p, ErrInvalidArgumentType)
	}
	if p > MaxPeriod {
		return Loan{}, fmt.Errorf("invalid period %v: %w", p, ErrInvalidPeriod)
	}
	return NewLoan(a, int(p), r)
}

// toFloat converts a numeric value of any kind to a float64.
func toFloat(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", name, v.String(), ErrInvalidArgumentType)
		}
		return f, nil
	case decimal.Decimal:
		return v.InexactFloat64(), nil
	case string:
		return 0, fmt.Errorf("%s %q: %w", name, v, ErrInvalidArgumentType)
	default:
		return 0, fmt.Errorf("%s of type %T: %w", name, value, ErrInvalidArgumentType)
	}
}

// Amount returns the borrowed amount.
func (l Loan) Amount() float64 { return l.amount }

// Period returns the number of monthly periods.
func (l Loan) Period() int { return l.period }

// InterestRate returns the annual nominal interest rate in percent.
func (l Loan) InterestRate() float64 { return l.interestRate }

// monthlyRate converts the annual percentage into a monthly fraction.
func (l Loan) monthlyRate() float64 { return l.interestRate / 1200 }

func (l Loan) String() string {
	return fmt.Sprintf("%v over %d months at %v%%", l.amount, l.period, l.interestRate)
}

// MarshalJSON writes the loan as {"amount":...,"period":...,"interest_rate":...}.
func (l Loan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", l.amount)
	w.Append("period", l.period)
	w.Append("interest_rate", l.interestRate)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a loan written by MarshalJSON. The values are validated
// like in NewLoanFromValues, so a missing or textual parameter fails with
// ErrInvalidArgumentType.
func (l *Loan) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("cannot parse loan %q: %w", string(data), err)
	}
	v, err := NewLoanFromValues(fields["amount"], fields["period"], fields["interest_rate"])
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// DecodeLoan reads a single JSON loan from r.
func DecodeLoan(r io.Reader) (Loan, error) {
	var l Loan
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Loan{}, err
	}
	return l, nil
}
