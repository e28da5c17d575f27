package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kalshi/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	inputs   inputFlags
	jsonMode bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the reconciled account summary" }
func (*summaryCmd) Usage() string {
	return `kpr summary [-fills <file>] [-settlements <file>] [-balance <file>] [-positions <file>] [-json]

  Reconciles the account from the exported files and displays the headline
  figures: capital invested, reinvested proceeds, realized and unrealized
  P&L, and net profit against deposits. With -json the summary is printed
  as the dashboard JSON document instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.inputs.AddFlags(f)
	f.BoolVar(&c.jsonMode, "json", false, "Print the summary as JSON instead of markdown.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, err := c.inputs.loadSummary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconciling account: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonMode {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
