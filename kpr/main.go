package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/kalshi/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	inputs := map[string]complete.Predictor{
		"fills":       predict.Files("*.json"),
		"settlements": predict.Files("*.json"),
		"balance":     predict.Files("*.json"),
		"positions":   predict.Files("*.json"),
		"deposits":    predict.Something,
		"days":        predict.Something,
	}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"summary": {Flags: inputs},
			"curve":   {Flags: inputs},
			"topic":   {Args: predict.Set{"readme", "inputs", "accounting"}},
			"assist":  {Flags: inputs},
		},
	}
	completion.Complete("kpr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
