package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/amortizer/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	currency string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the annuity and straight methods for a loan" }
func (*compareCmd) Usage() string {
	return `amortize -amount <amount> -period <months> -rate <rate> compare [-c <currency>]

  Displays the summaries of both amortization methods side by side, and how
  much the cheapest one saves.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency used to display amounts.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := DecodeLoan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading loan: %v\n", err)
		return subcommands.ExitUsageError
	}
	fm, err := formatter(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	comparison, err := renderer.NewComparison(loan, fm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing methods: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderComparison(comparison))
	return subcommands.ExitSuccess
}
