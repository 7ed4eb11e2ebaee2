package amortizer

import "github.com/shopspring/decimal"

// Summary holds the aggregate statistics of a schedule.
type Summary struct {
	TotalCost              float64 `json:"total_cost"`
	AverageInterestExpense float64 `json:"average_interest_exp"`
	AverageMonthlyPayment  float64 `json:"average_monthly_pmt"`
	TotalInterestExpense   float64 `json:"total_interest_exp"`
}

// Summary reduces the schedule into its summary statistics.
//
// Sums are exact over the rounded values of the records, results are rounded
// to 2 decimals.
func (s Schedule) Summary() Summary {
	if len(s) == 0 {
		return Summary{}
	}
	var payments, interests decimal.Decimal
	for _, r := range s {
		payments = payments.Add(decimal.NewFromFloat(r.Payment))
		interests = interests.Add(decimal.NewFromFloat(r.InterestExpense))
	}
	n := decimal.NewFromInt(int64(len(s)))
	return Summary{
		TotalCost:              payments.Round(2).InexactFloat64(),
		AverageInterestExpense: interests.Div(n).Round(2).InexactFloat64(),
		AverageMonthlyPayment:  payments.Div(n).Round(2).InexactFloat64(),
		TotalInterestExpense:   interests.Round(2).InexactFloat64(),
	}
}

// TotalAmortization returns the sum of the amortization column, it equals the
// loan amount within rounding.
func (s Schedule) TotalAmortization() float64 {
	var sum decimal.Decimal
	for _, r := range s {
		sum = sum.Add(decimal.NewFromFloat(r.Amortization))
	}
	return sum.Round(2).InexactFloat64()
}

// Summary computes the schedule with method m and returns its summary.
func (l Loan) Summary(m Method) (Summary, error) {
	s, err := l.Schedule(m)
	if err != nil {
		return Summary{}, err
	}
	return s.Summary(), nil
}
