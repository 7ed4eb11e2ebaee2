package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	dir    string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the amortization schedule to a file" }
func (*exportCmd) Usage() string {
	return `amortize [-method <method>] -amount <amount> -period <months> -rate <rate> export [-dir <prefix>] [-format csv|xlsx]

  Writes the schedule into <prefix><method>_amortization.<format>.
  The prefix is used as is, end it with a '/' to designate a folder.

Usage Examples:
$ amortize -amount 12000 -period 12 -rate 12 export -dir /tmp/
Data was recorded to annuity_amortization.csv at the following location: /tmp/
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", settings.ExportDir, "Folder prefix of the exported file, with its trailing '/'.")
	f.StringVar(&c.format, "format", settings.ExportFormat, "Export format: csv or xlsx.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := DecodeLoan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading loan: %v\n", err)
		return subcommands.ExitUsageError
	}

	var msg string
	switch c.format {
	case "csv":
		msg, err = loan.ExportCSV(c.dir, method)
	case "xlsx":
		msg, err = loan.ExportXLSX(c.dir, method)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting schedule: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, msg)
	return subcommands.ExitSuccess
}
