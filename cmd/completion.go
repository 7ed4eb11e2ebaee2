package cmd

import (
	"flag"

	"github.com/etnz/amortizer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors lists the flags with a known set of values.
var flagPredictors = map[string]complete.Predictor{
	"method": methodNames(),
	"format": predict.Set{"md", "html", "json", "csv", "xlsx"},
	"loan":   predict.Files("*.json"),
	"dir":    predict.Dirs("*"),
	"c":      predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
}

func methodNames() predict.Set {
	var names predict.Set
	for _, m := range amortizer.Methods {
		names = append(names, m.String())
	}
	return names
}

// Completion returns the shell completion tree of the commander's subcommands and of the global flags.
func Completion(commander *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(global),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(fs)}
	})
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
