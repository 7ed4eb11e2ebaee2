package amortizer

import (
	"errors"
	"math"
	"testing"
)

// newTestLoan creates a loan or fails the test.
func newTestLoan(t *testing.T, amount float64, period int, interestRate float64) Loan {
	t.Helper()
	l, err := NewLoan(amount, period, interestRate)
	if err != nil {
		t.Fatalf("NewLoan(%v, %v, %v) failed: %v", amount, period, interestRate, err)
	}
	return l
}

func near(a, b, tolerance float64) bool { return math.Abs(a-b) <= tolerance }

func TestStraightSchedule(t *testing.T) {
	l := newTestLoan(t, 12000, 12, 12)
	s := l.StraightSchedule()

	if len(s) != 12 {
		t.Fatalf("len(schedule) = %d, want 12", len(s))
	}
	for _, r := range s {
		if r.Amortization != 1000 {
			t.Errorf("period %d: amortization = %v, want 1000", r.Period, r.Amortization)
		}
	}
	want := PeriodRecord{Period: 1, Amortization: 1000, InterestExpense: 120, Payment: 1120, RemainingDebt: 11000}
	if s[0] != want {
		t.Errorf("first period = %+v, want %+v", s[0], want)
	}
	if s[11].RemainingDebt != 0 {
		t.Errorf("last period remaining debt = %v, want 0", s[11].RemainingDebt)
	}
	// interest on 1000 at 1% a month
	if s[11].InterestExpense != 10 || s[11].Payment != 1010 {
		t.Errorf("last period = %+v, want interest 10 and payment 1010", s[11])
	}
}

func TestAnnuitySchedule(t *testing.T) {
	l := newTestLoan(t, 12000, 12, 12)
	s := l.AnnuitySchedule()

	if len(s) != 12 {
		t.Fatalf("len(schedule) = %d, want 12", len(s))
	}
	// 12000 * 0.01 / (1 - 1.01^-12)
	if got := round2(l.AnnuityPayment()); got != 1066.19 {
		t.Errorf("AnnuityPayment() = %v, want 1066.19", got)
	}
	want := PeriodRecord{Period: 1, Amortization: 946.19, InterestExpense: 120, Payment: 1066.19, RemainingDebt: 11053.81}
	if s[0] != want {
		t.Errorf("first period = %+v, want %+v", s[0], want)
	}
	for _, r := range s {
		if r.Payment != 1066.19 {
			t.Errorf("period %d: payment = %v, want 1066.19", r.Period, r.Payment)
		}
	}
	if s[11].RemainingDebt != 0 {
		t.Errorf("last period remaining debt = %v, want 0", s[11].RemainingDebt)
	}
}

func TestAnnuitySchedule_ZeroRate(t *testing.T) {
	l := newTestLoan(t, 1200, 12, 0)
	s := l.AnnuitySchedule()

	for _, r := range s {
		if math.IsNaN(r.Payment) || r.Payment != 100 || r.Amortization != 100 || r.InterestExpense != 0 {
			t.Errorf("period %d = %+v, want payment 100, amortization 100, no interest", r.Period, r)
		}
	}
	straight := l.StraightSchedule()
	for i := range s {
		if s[i] != straight[i] {
			t.Errorf("period %d: annuity %+v != straight %+v", i+1, s[i], straight[i])
		}
	}
}

// TestScheduleProperties checks the properties shared by both methods over a
// set of loans.
func TestScheduleProperties(t *testing.T) {
	loans := []struct {
		amount       float64
		period       int
		interestRate float64
	}{
		{12000, 12, 12},
		{1000, 3, 5},
		{100000, 60, 9.5},
		{900.50, 7, 0},
		{250000, 360, 3.75},
		{5000, 1, 100},
		{777.77, 13, 33.3},
		{1000, 12, 1e-13},
		{1000, 12, 1e-10},
		{559392.46, 472, 87.8},
		{500000, 480, 70},
		{100000, MaxPeriod, 100},
	}

	for _, lc := range loans {
		l := newTestLoan(t, lc.amount, lc.period, lc.interestRate)
		tolerance := 0.01 * float64(lc.period)

		for _, m := range Methods {
			t.Run(l.String()+"/"+m.String(), func(t *testing.T) {
				s, err := l.Schedule(m)
				if err != nil {
					t.Fatalf("Schedule() unexpected error: %v", err)
				}
				if len(s) != lc.period {
					t.Fatalf("len(schedule) = %d, want %d", len(s), lc.period)
				}

				for i, r := range s {
					if r.Period != i+1 {
						t.Errorf("schedule[%d].Period = %d, want %d", i, r.Period, i+1)
					}
					if r.RemainingDebt < 0 {
						t.Errorf("period %d: negative remaining debt %v", r.Period, r.RemainingDebt)
					}
					if i > 0 && r.RemainingDebt > s[i-1].RemainingDebt {
						t.Errorf("period %d: remaining debt increased from %v to %v", r.Period, s[i-1].RemainingDebt, r.RemainingDebt)
					}
					if !near(r.Payment, r.Amortization+r.InterestExpense, 0.011) {
						t.Errorf("period %d: payment %v != %v + %v", r.Period, r.Payment, r.Amortization, r.InterestExpense)
					}
					switch m {
					case Annuity:
						if !near(r.Payment, s[0].Payment, 0.011) {
							t.Errorf("period %d: payment %v, want constant %v", r.Period, r.Payment, s[0].Payment)
						}
					case Straight:
						if r.Amortization != s[0].Amortization {
							t.Errorf("period %d: amortization %v, want constant %v", r.Period, r.Amortization, s[0].Amortization)
						}
					}
				}

				if last := s[len(s)-1].RemainingDebt; !near(last, 0, tolerance) {
					t.Errorf("last remaining debt = %v, want 0", last)
				}
				if got := s.TotalAmortization(); !near(got, lc.amount, tolerance) {
					t.Errorf("TotalAmortization() = %v, want %v", got, lc.amount)
				}
			})
		}
	}
}

func TestAnnuitySchedule_TinyRate(t *testing.T) {
	for _, rate := range []float64{1e-13, 1e-12, 1e-10} {
		l := newTestLoan(t, 1000, 12, rate)
		if got := round2(l.AnnuityPayment()); got != 83.33 {
			t.Errorf("%v: AnnuityPayment() = %v, want 83.33", l, got)
		}
		s := l.AnnuitySchedule()
		if last := s[len(s)-1].RemainingDebt; last != 0 {
			t.Errorf("%v: last remaining debt = %v, want 0", l, last)
		}
	}
}

func TestAnnuitySchedule_LongTermHighRate(t *testing.T) {
	l := newTestLoan(t, 559392.46, 472, 87.8)
	s := l.AnnuitySchedule()

	if last := s[len(s)-1].RemainingDebt; last != 0 {
		t.Errorf("last remaining debt = %v, want 0", last)
	}
	if got := s.TotalAmortization(); !near(got, 559392.46, 1) {
		t.Errorf("TotalAmortization() = %v, want 559392.46", got)
	}
	// 559392.46 * r / (1 - (1+r)^-472), r = 87.8/1200
	if s[0].Payment != 40928.88 || s[0].Amortization != 0 {
		t.Errorf("first period = %+v, want payment 40928.88 and no amortization", s[0])
	}
}

func TestLoan_Schedule_UnknownMethod(t *testing.T) {
	l := newTestLoan(t, 1000, 12, 5)
	if _, err := l.Schedule(Method(7)); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("Schedule() error = %v, want ErrUnknownMethod", err)
	}
}

func TestSchedule_FreshOnEachCall(t *testing.T) {
	l := newTestLoan(t, 1000, 4, 5)
	a := l.StraightSchedule()
	a[0].Payment = -1
	b := l.StraightSchedule()
	if b[0].Payment == -1 {
		t.Errorf("schedules share their storage")
	}
}
