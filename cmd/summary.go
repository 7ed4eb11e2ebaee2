package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/amortizer/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	currency string
	json     bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the summary statistics of a loan" }
func (*summaryCmd) Usage() string {
	return `amortize [-method <method>] -amount <amount> -period <months> -rate <rate> summary [-c <currency>] [-json]

  Displays the total cost, total interest expense, average monthly payment
  and average interest expense of the loan.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency used to display amounts.")
	f.BoolVar(&c.json, "json", false, "Print the summary as JSON.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := DecodeLoan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading loan: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.json {
		s, err := loan.Summary(method)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
			return subcommands.ExitFailure
		}
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}

	fm, err := formatter(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, err := renderer.NewReport(loan, method, fm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderReport(report, renderer.ReportRenderOptions{SkipSchedule: true}))
	return subcommands.ExitSuccess
}
