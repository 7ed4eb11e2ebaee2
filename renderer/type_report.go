package renderer

import (
	"strings"

	"github.com/etnz/amortizer"
)

// Report represents a loan schedule and its summary for rendering.
type Report struct {
	Title   string        `json:"title"`
	Method  string        `json:"method"`
	Amount  string        `json:"amount"`
	Period  int           `json:"period"`
	Rate    string        `json:"rate"`
	Summary SummaryReport `json:"summary"`
	Rows    []Row         `json:"rows"`
}

// SummaryReport holds the formatted summary statistics.
type SummaryReport struct {
	TotalCost              string `json:"totalCost"`
	TotalInterestExpense   string `json:"totalInterestExpense"`
	AverageMonthlyPayment  string `json:"averageMonthlyPayment"`
	AverageInterestExpense string `json:"averageInterestExpense"`
}

// Row is a single formatted period of the schedule.
type Row struct {
	Period          int    `json:"period"`
	Amortization    string `json:"amortization"`
	InterestExpense string `json:"interestExpense"`
	Payment         string `json:"payment"`
	RemainingDebt   string `json:"remainingDebt"`
}

// NewReport computes the schedule of the loan with method m and formats it with f.
func NewReport(l amortizer.Loan, m amortizer.Method, f Formatter) (*Report, error) {
	s, err := l.Schedule(m)
	if err != nil {
		return nil, err
	}
	name := m.String()
	r := &Report{
		Title:   strings.ToUpper(name[:1]) + name[1:] + " amortization",
		Method:  name,
		Amount:  f.Format(l.Amount()),
		Period:  l.Period(),
		Rate:    Percent(l.InterestRate()),
		Summary: newSummaryReport(s.Summary(), f),
		Rows:    make([]Row, 0, len(s)),
	}
	for _, p := range s {
		r.Rows = append(r.Rows, Row{
			Period:          p.Period,
			Amortization:    f.Format(p.Amortization),
			InterestExpense: f.Format(p.InterestExpense),
			Payment:         f.Format(p.Payment),
			RemainingDebt:   f.Format(p.RemainingDebt),
		})
	}
	return r, nil
}

func newSummaryReport(s amortizer.Summary, f Formatter) SummaryReport {
	return SummaryReport{
		TotalCost:              f.Format(s.TotalCost),
		TotalInterestExpense:   f.Format(s.TotalInterestExpense),
		AverageMonthlyPayment:  f.Format(s.AverageMonthlyPayment),
		AverageInterestExpense: f.Format(s.AverageInterestExpense),
	}
}
