package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/amortizer"
	"github.com/google/subcommands"
)

// withLoan sets the global flags to describe a loan, and restores them at
// the end of the test.
func withLoan(t *testing.T, a float64, p int, r float64, m amortizer.Method) {
	t.Helper()
	amount, period, rate, method, loanFile = a, p, r, m, ""
	settings = DefaultConfig()
	t.Cleanup(func() {
		amount, period, rate, method, loanFile = 0, 0, 0, amortizer.Annuity, ""
		settings = DefaultConfig()
	})
}

// execute runs the command c with args and returns what it printed.
func execute(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var out bytes.Buffer
	stdout, Raw = &out, true
	t.Cleanup(func() { stdout, Raw = os.Stdout, false })

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	status := c.Execute(context.Background(), fs)
	return out.String(), status
}

func TestScheduleCmd(t *testing.T) {
	tests := []struct {
		name   string
		method amortizer.Method
		args   []string
		want   []string
	}{
		{
			name:   "markdown",
			method: amortizer.Straight,
			want: []string{
				"# Straight amortization",
				"| 1 | 1000.00 | 120.00 | 1120.00 | 11000.00 |",
				"| 12 | 1000.00 | 10.00 | 1010.00 | 0.00 |",
			},
		},
		{
			name:   "csv",
			method: amortizer.Straight,
			args:   []string{"-format", "csv"},
			want: []string{
				"Month:Period,Amortization,Interest expense,Payment,Remaining debt\n1,1000.00,120.00,1120.00,11000.00\n",
			},
		},
		{
			name:   "json",
			method: amortizer.Annuity,
			args:   []string{"-format", "json"},
			want:   []string{`[{"period":1,"amortization":946.19,"interest_expense":120.00,"payment":1066.19,"remaining_debt":11053.81},`},
		},
		{
			name:   "html",
			method: amortizer.Annuity,
			args:   []string{"-format", "html"},
			want:   []string{"<table>", "<td>1066.19</td>"},
		},
		{
			name:   "select",
			method: amortizer.Straight,
			args:   []string{"-select", "$[0].interest_expense"},
			want:   []string{"120\n"},
		},
		{
			name:   "currency",
			method: amortizer.Annuity,
			args:   []string{"-c", "USD"},
			want:   []string{"$1,066.19"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withLoan(t, 12000, 12, 12, tc.method)
			got, status := execute(t, &scheduleCmd{}, tc.args...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("schedule %q returned %v", tc.args, status)
			}
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("schedule %q output does not contain %q:\n%s", tc.args, w, got)
				}
			}
		})
	}
}

func TestScheduleCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		period int
		args   []string
		want   subcommands.ExitStatus
	}{
		{"invalid period", 0, nil, subcommands.ExitUsageError},
		{"unknown format", 12, []string{"-format", "pdf"}, subcommands.ExitUsageError},
		{"unknown currency", 12, []string{"-c", "XYZ"}, subcommands.ExitUsageError},
		{"invalid query", 12, []string{"-select", "$[?(@.period =="}, subcommands.ExitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withLoan(t, 12000, tc.period, 12, amortizer.Annuity)
			if _, status := execute(t, &scheduleCmd{}, tc.args...); status != tc.want {
				t.Errorf("schedule %q returned %v, want %v", tc.args, status, tc.want)
			}
		})
	}
}

func TestSummaryCmd(t *testing.T) {
	withLoan(t, 12000, 12, 12, amortizer.Annuity)

	got, status := execute(t, &summaryCmd{}, "-json")
	if status != subcommands.ExitSuccess {
		t.Fatalf("summary -json returned %v", status)
	}
	want := `{
  "total_cost": 12794.28,
  "average_interest_exp": 66.19,
  "average_monthly_pmt": 1066.19,
  "total_interest_exp": 794.24
}
`
	if got != want {
		t.Errorf("summary -json = %q, want %q", got, want)
	}

	got, status = execute(t, &summaryCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("summary returned %v", status)
	}
	if !strings.Contains(got, "| Total cost | 12794.28 |") {
		t.Errorf("summary does not contain the total cost:\n%s", got)
	}
	if strings.Contains(got, "## Schedule") {
		t.Errorf("summary must not contain the schedule:\n%s", got)
	}
}

func TestCompareCmd(t *testing.T) {
	withLoan(t, 12000, 12, 12, amortizer.Annuity)

	got, status := execute(t, &compareCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("compare returned %v", status)
	}
	for _, w := range []string{
		"| First payment | 1066.19 | 1120.00 |",
		"The **straight** method is the cheapest, it saves 14.28.",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("compare output does not contain %q:\n%s", w, got)
		}
	}
}

func TestExportCmd(t *testing.T) {
	tests := []struct {
		format string
		method amortizer.Method
		file   string
	}{
		{"csv", amortizer.Straight, "straight_amortization.csv"},
		{"xlsx", amortizer.Annuity, "annuity_amortization.xlsx"},
	}
	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			withLoan(t, 12000, 12, 12, tc.method)
			dir := t.TempDir() + string(os.PathSeparator)

			got, status := execute(t, &exportCmd{}, "-dir", dir, "-format", tc.format)
			if status != subcommands.ExitSuccess {
				t.Fatalf("export returned %v", status)
			}
			want := "Data was recorded to " + tc.file + " at the following location: " + dir + "\n"
			if got != want {
				t.Errorf("export printed %q, want %q", got, want)
			}
			if info, err := os.Stat(filepath.Join(dir, tc.file)); err != nil || info.Size() == 0 {
				t.Errorf("export file %q missing or empty: %v", tc.file, err)
			}
		})
	}
}

func TestExportCmd_Errors(t *testing.T) {
	withLoan(t, 12000, 12, 12, amortizer.Annuity)

	if _, status := execute(t, &exportCmd{}, "-format", "pdf"); status != subcommands.ExitUsageError {
		t.Errorf("export -format pdf returned %v, want %v", status, subcommands.ExitUsageError)
	}
	dir := filepath.Join(t.TempDir(), "missing") + string(os.PathSeparator)
	if _, status := execute(t, &exportCmd{}, "-dir", dir); status != subcommands.ExitFailure {
		t.Errorf("export into a missing folder returned %v, want %v", status, subcommands.ExitFailure)
	}
}

func TestDecodeLoan(t *testing.T) {
	withLoan(t, 12000, 12, 12, amortizer.Annuity)

	l, err := DecodeLoan()
	if err != nil {
		t.Fatalf("DecodeLoan() from flags failed: %v", err)
	}
	if l.Amount() != 12000 || l.Period() != 12 || l.InterestRate() != 12 {
		t.Errorf("DecodeLoan() from flags = %v", l)
	}

	loanFile = filepath.Join(t.TempDir(), "loan.json")
	if err := os.WriteFile(loanFile, []byte(`{"amount": 900.5, "period": 60, "interest_rate": 9.5}`), 0644); err != nil {
		t.Fatal(err)
	}
	l, err = DecodeLoan()
	if err != nil {
		t.Fatalf("DecodeLoan() from file failed: %v", err)
	}
	if l.Amount() != 900.5 || l.Period() != 60 || l.InterestRate() != 9.5 {
		t.Errorf("DecodeLoan() from file = %v", l)
	}

	loanFile = "-"
	stdin = strings.NewReader(`{"amount": 100, "period": 2, "interest_rate": 0}`)
	t.Cleanup(func() { stdin = os.Stdin })
	l, err = DecodeLoan()
	if err != nil {
		t.Fatalf("DecodeLoan() from stdin failed: %v", err)
	}
	if l.Period() != 2 {
		t.Errorf("DecodeLoan() from stdin = %v", l)
	}
}

func TestScheduleCmd_InvalidLoanFile(t *testing.T) {
	withLoan(t, 0, 0, 0, amortizer.Annuity)
	loanFile = filepath.Join(t.TempDir(), "loan.json")
	if err := os.WriteFile(loanFile, []byte(`{"amount": "abc", "period": 12, "interest_rate": 5}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, status := execute(t, &scheduleCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("schedule with an invalid loan file returned %v, want %v", status, subcommands.ExitUsageError)
	}
}

func TestTopicCmd(t *testing.T) {
	got, status := execute(t, &topicCmd{}, "-l")
	if status != subcommands.ExitSuccess {
		t.Fatalf("topic -l returned %v", status)
	}
	if !strings.Contains(got, "methods\n") {
		t.Errorf("topic -l does not list methods:\n%s", got)
	}

	got, status = execute(t, &topicCmd{}, "methods")
	if status != subcommands.ExitSuccess {
		t.Fatalf("topic methods returned %v", status)
	}
	if !strings.HasPrefix(got, "# Amortization methods") {
		t.Errorf("topic methods printed:\n%s", got)
	}

	if _, status := execute(t, &topicCmd{}, "unknown"); status != subcommands.ExitFailure {
		t.Errorf("topic unknown returned %v, want %v", status, subcommands.ExitFailure)
	}
}
