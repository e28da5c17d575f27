package agent

import (
	"context"

	"github.com/etnz/kalshi/docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Reports provides the rendered account reports the analyst can consult.
// Each callback reconciles the account from the input files on demand, so
// the analyst always reads fresh figures.
type Reports struct {
	Summary func() (string, error)
	Curve   func() (string, error)
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the state and performance of his Kalshi
			trading account. Devise a plan of questions to ask each expert and come up with
			the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert in charge of reading the reconciled account.
func NewAnalyst(reports Reports) *Expert {
	lib := []Function{summaryFunc(reports), curveFunc(reports)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's reconciled Kalshi account:
		capital invested, reinvested proceeds, realized and unrealized P&L, and the
		settlement history. Ask the Analyst whenever you need a figure about the account.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's Kalshi trading account.
				You know how to use the Tools to read the reconciled account figures.
				You are part of a team of experts, yours is everything about the account.
				They might ask you questions in approximative language, figure out what they meant.

				Below is the documentation of the accounting rules behind the figures:

				` + must(docs.GetTopic("accounting"))}}},
		},
		Library: NewLibrary(lib),
	}
}

func summaryFunc(reports Reports) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reconciles the account and returns all the headline figures:
			total invested, reinvested, net new cash, realized and unrealized P&L, net profit
			against deposits, return rates, and the account balance breakdown.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the reconciled account.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return report(id, "Summary", reports.Summary)
		},
	}
}

func curveFunc(reports Reports) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Curve",
			Description: `Curve returns the cumulative realized P&L over time, one row per
			settlement, oldest first.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the cumulative realized P&L.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return report(id, "Curve", reports.Curve)
		},
	}
}

func report(id, name string, f func() (string, error)) *genai.FunctionResponse {
	out, err := f()
	if err != nil {
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"error": err.Error(),
			},
		}
	}
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": out,
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
