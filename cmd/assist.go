package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/kalshi/agent"
	"github.com/etnz/kalshi/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	inputs inputFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `assist [question]:
  Start an interactive session with the AI assistant.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.inputs.AddFlags(f)
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(agent.Reports{
		Summary: func() (string, error) {
			summary, err := c.inputs.loadSummary()
			if err != nil {
				return "", err
			}
			return renderer.SummaryMarkdown(summary), nil
		},
		Curve: func() (string, error) {
			summary, err := c.inputs.loadSummary()
			if err != nil {
				return "", err
			}
			return renderer.CurveMarkdown(summary.Ledger.Series), nil
		},
	})

	a := agent.New(os.Stdout, os.Stdin, analyst)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
