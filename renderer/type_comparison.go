package renderer

import "github.com/etnz/amortizer"

// Comparison represents the summaries of both methods side by side.
type Comparison struct {
	Amount   string          `json:"amount"`
	Period   int             `json:"period"`
	Rate     string          `json:"rate"`
	Methods  []MethodSummary `json:"methods"`
	Cheapest string          `json:"cheapest"`
	Savings  string          `json:"savings"` // total cost difference between the two methods.
}

// MethodSummary is the summary of one method in a comparison.
type MethodSummary struct {
	Method       string        `json:"method"`
	FirstPayment string        `json:"firstPayment"`
	LastPayment  string        `json:"lastPayment"`
	Summary      SummaryReport `json:"summary"`
}

// NewComparison computes the summaries of every method for loan l.
func NewComparison(l amortizer.Loan, f Formatter) (*Comparison, error) {
	c := &Comparison{
		Amount: f.Format(l.Amount()),
		Period: l.Period(),
		Rate:   Percent(l.InterestRate()),
	}
	var costs []float64
	for _, m := range amortizer.Methods {
		s, err := l.Schedule(m)
		if err != nil {
			return nil, err
		}
		sum := s.Summary()
		costs = append(costs, sum.TotalCost)
		c.Methods = append(c.Methods, MethodSummary{
			Method:       m.String(),
			FirstPayment: f.Format(s[0].Payment),
			LastPayment:  f.Format(s[len(s)-1].Payment),
			Summary:      newSummaryReport(sum, f),
		})
	}

	cheapest := 0
	for i, cost := range costs {
		if cost < costs[cheapest] {
			cheapest = i
		}
	}
	c.Cheapest = c.Methods[cheapest].Method
	most := costs[0]
	for _, cost := range costs {
		most = max(most, cost)
	}
	c.Savings = f.Format(most - costs[cheapest])
	return c, nil
}
