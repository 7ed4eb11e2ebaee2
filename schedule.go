package amortizer

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PeriodRecord is one row of an amortization schedule.
type PeriodRecord struct {
	Period          int     // 1-based position in the schedule.
	Amortization    float64 // Principal repaid in this period.
	InterestExpense float64 // Interest paid in this period.
	Payment         float64 // Amortization + InterestExpense.
	RemainingDebt   float64 // Principal still due after this period, never negative.
}

// Schedule is the chronological list of the periods of a loan.
// Schedule[i] holds period i+1.
type Schedule []PeriodRecord

// round2 rounds v to 2 decimals, half away from zero.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// newRecord builds a rounded record. Computations are carried out on the
// unrounded values, only the record is rounded.
func newRecord(period int, amortization, interest, remaining float64) PeriodRecord {
	rec := PeriodRecord{
		Period:          period,
		Amortization:    round2(amortization),
		InterestExpense: round2(interest),
		Payment:         round2(amortization + interest),
		RemainingDebt:   round2(remaining),
	}
	// floating point drift on the last period, -0 included.
	if rec.RemainingDebt <= 0 {
		rec.RemainingDebt = 0
	}
	return rec
}

// Schedule computes the amortization schedule of the loan with method m.
func (l Loan) Schedule(m Method) (Schedule, error) {
	switch m {
	case Annuity:
		return l.AnnuitySchedule(), nil
	case Straight:
		return l.StraightSchedule(), nil
	default:
		return nil, fmt.Errorf("schedule for method %d: %w", int(m), ErrUnknownMethod)
	}
}

// StraightSchedule computes the schedule with a constant amortization.
//
// The borrower repays amount/period of principal each period, the interest
// is computed on the outstanding debt, so payments are the biggest at the
// beginning of the loan and decrease afterward.
func (l Loan) StraightSchedule() Schedule {
	amortization := l.amount / float64(l.period)
	rate := l.monthlyRate()
	balance := l.amount

	s := make(Schedule, 0, l.period)
	for i := 1; i <= l.period; i++ {
		interest := balance * rate
		balance -= amortization
		s = append(s, newRecord(i, amortization, interest, balance))
	}
	return s
}

// AnnuityPayment returns the constant payment of the annuity method
// (unrounded).
func (l Loan) AnnuityPayment() float64 {
	rate := l.monthlyRate()
	if rate == 0 {
		return l.amount / float64(l.period)
	}
	return l.amount * rate / -discount(rate, l.period)
}

// discount returns (1+rate)^-n - 1, accurate for rates close to 0.
func discount(rate float64, n int) float64 {
	return math.Expm1(-float64(n) * math.Log1p(rate))
}

// AnnuitySchedule computes the schedule with a constant payment.
//
// At the beginning the payments are mostly interest, towards the end they
// are mostly amortization. With a zero interest rate it is the same as the
// straight schedule.
//
// The remaining debt of each period is computed from the closed form, not
// by carrying the balance over, so that rounding errors do not grow with
// the term.
func (l Loan) AnnuitySchedule() Schedule {
	rate := l.monthlyRate()
	if rate == 0 {
		return l.StraightSchedule()
	}
	payment := l.AnnuityPayment()
	total := discount(rate, l.period)
	previous := l.amount

	s := make(Schedule, 0, l.period)
	for i := 1; i <= l.period; i++ {
		balance := l.amount * discount(rate, l.period-i) / total
		amortization := previous - balance
		interest := payment - amortization
		previous = balance
		s = append(s, newRecord(i, amortization, interest, balance))
	}
	return s
}
