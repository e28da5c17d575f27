package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kalshi/renderer"
	"github.com/google/subcommands"
)

// curveCmd holds the flags for the 'curve' subcommand.
type curveCmd struct {
	inputs inputFlags
}

func (*curveCmd) Name() string     { return "curve" }
func (*curveCmd) Synopsis() string { return "display the cumulative realized P&L over time" }
func (*curveCmd) Usage() string {
	return `kpr curve [-fills <file>] [-settlements <file>]

  Displays the cumulative realized P&L, one row per timestamped settlement,
  oldest first.
`
}

func (c *curveCmd) SetFlags(f *flag.FlagSet) {
	c.inputs.AddFlags(f)
}

func (c *curveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, err := c.inputs.loadSummary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconciling account: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CurveMarkdown(summary.Ledger.Series))
	return subcommands.ExitSuccess
}
