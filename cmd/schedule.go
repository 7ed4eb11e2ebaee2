package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/amortizer"
	"github.com/etnz/amortizer/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	format   string
	query    string
	currency string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display the amortization schedule of a loan" }
func (*scheduleCmd) Usage() string {
	return `amortize [-method <method>] -amount <amount> -period <months> -rate <rate> schedule [-format md|html|json|csv] [-select <jsonpath>]

  Displays the period by period amortization, interest expense, payment and
  remaining debt of the loan.

Usage Examples:
# Annuity schedule of 12000 over a year at 12%.
$ amortize -amount 12000 -period 12 -rate 12 schedule

# Payment of the first period of a straight schedule.
$ amortize -method straight -amount 12000 -period 12 -rate 12 schedule -select '$[0].payment'
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "md", "Output format: md, html, json or csv.")
	f.StringVar(&c.query, "select", "", "JSONPath query applied to the JSON schedule, implies -format json.")
	f.StringVar(&c.currency, "c", "", "Currency used to display amounts in md format.")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := DecodeLoan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading loan: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.query != "" {
		c.format = "json"
	}

	s, err := loan.Schedule(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing schedule: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "md":
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
		printMarkdown(renderer.RenderReport(report, renderer.ReportRenderOptions{}))
	case "html":
		err = s.WriteHTML(stdout)
	case "csv":
		err = s.WriteCSV(stdout)
	case "json":
		err = printJSON(s, c.query)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schedule: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printJSON prints the schedule as JSON, or the result of the JSONPath query on it.
func printJSON(s amortizer.Schedule, query string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if query == "" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	res, err := jsonpath.Get(query, v)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", query, err)
	}
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
