package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/banksim/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for bsim. When invoked by the
// shell's completion machinery it answers and exits the process.
func completion() {
	currencies := predict.Set{"USD", "EUR", "GBP", "JPY"}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {
				Flags: map[string]complete.Predictor{
					"accounts": predict.Something,
					"tx":       predict.Something,
					"months":   predict.Something,
					"seed":     predict.Something,
					"balance":  predict.Something,
					"currency": currencies,
					"report":   predict.Nothing,
				},
			},
			"settle": {
				Flags: map[string]complete.Predictor{
					"balance":  predict.Something,
					"currency": currencies,
				},
			},
			"topic": {
				Args: predict.Set{"readme", "policies", "simulation", "*"},
			},
		},
	}
	root.Complete("bsim")
}
