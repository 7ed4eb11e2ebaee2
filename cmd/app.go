// Package cmd implements the CLI application to compute loan amortization schedules.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/amortizer"
	"github.com/etnz/amortizer/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&scheduleCmd{}, "loan")
	c.Register(&summaryCmd{}, "loan")
	c.Register(&compareCmd{}, "loan")
	c.Register(&exportCmd{}, "loan")
	c.Register(&explainCmd{}, "loan")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	amount   float64
	period   int
	rate     float64
	loanFile string
	method   amortizer.Method
	// Verbose enables debug logs.
	Verbose bool
	// Raw prints markdown as is instead of rendering it for the terminal.
	Raw bool

	// settings loaded by LoadConfig.
	settings = DefaultConfig()

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// SetGlobalFlags declares the global flags on fs, defaults come from cfg.
func SetGlobalFlags(fs *flag.FlagSet, cfg Config) {
	settings = cfg
	if m, err := amortizer.ParseMethod(cfg.Method); err == nil {
		method = m
	}
	fs.Float64Var(&amount, "amount", 0, "Loan amount, e.g. 100000 or 900.50")
	fs.IntVar(&period, "period", 0, "Number of monthly periods, e.g. 60 for 5 years")
	fs.Float64Var(&rate, "rate", 0, "Annual interest rate in percent, e.g. 9.5 for 9.5%")
	fs.StringVar(&loanFile, "loan", "", "JSON file describing the loan, '-' for stdin. Overrides -amount, -period and -rate.")
	fs.Var(&method, "method", "Amortization method: annuity or straight")
	fs.BoolVar(&Verbose, "v", false, "Print debug logs")
	fs.BoolVar(&Raw, "raw", false, "Print markdown without terminal rendering")
}

// DecodeLoan returns the loan described by the global flags.
func DecodeLoan() (amortizer.Loan, error) {
	if loanFile == "" {
		return amortizer.NewLoan(amount, period, rate)
	}
	if loanFile == "-" {
		return amortizer.DecodeLoan(stdin)
	}
	f, err := os.Open(loanFile)
	if err != nil {
		return amortizer.Loan{}, err
	}
	defer f.Close()
	l, err := amortizer.DecodeLoan(f)
	if err != nil {
		return amortizer.Loan{}, fmt.Errorf("invalid loan file %q: %w", loanFile, err)
	}
	return l, nil
}

// printMarkdown prints md rendered for the terminal, or raw if requested.
func printMarkdown(md string) {
	if Raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// formatter returns the amount formatter for the currency flag value, or the configured one.
func formatter(currency string) (renderer.Formatter, error) {
	if currency == "" {
		currency = settings.Currency
	}
	return renderer.NewFormatter(currency)
}
