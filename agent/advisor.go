package agent

import (
	"context"
	"fmt"

	"github.com/etnz/dca"
	"github.com/etnz/dca/docs"
	"github.com/etnz/dca/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// NewAdvisor creates the expert that answers the user's questions about the
// assets stored in repo. It can only read them.
func NewAdvisor(repo dca.Repository, model string) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := []Function{listAssets(repo), assetReport(repo)}
	return &Expert{
		Name:        "Advisor",
		Description: "Comments the dollar cost averaging of the user's assets.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: genai.NewContentFromText(`
			You assist a user who buys assets following a drawdown based averaging strategy.

			`+must(docs.Read("strategy"))+`

			Use the Tools to list the user's assets and read their reports before answering.
			Never invent purchases or prices. Answer in concise markdown.
			You cannot modify the assets, tell the user which dca command to run instead.
			`, genai.RoleUser),
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, args map[string]any) (string, error) {
	return f.Func(ctx, args)
}

func listAssets(repo dca.Repository) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ListAssets",
			Description: "ListAssets returns the names of all the user's assets.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown list of asset names.",
			},
		},
		Func: func(_ context.Context, _ map[string]any) (string, error) {
			names, err := repo.List()
			if err != nil {
				return "", fmt.Errorf("could not list assets: %w", err)
			}
			return renderer.RenderList(names), nil
		},
	}
}

func assetReport(repo dca.Repository) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "AssetReport",
			Description: `AssetReport returns everything known about an asset: its currency, drawdown,
			every purchase, the total investment and quantity, the break-even price,
			and the price of the next planned purchase.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"asset": {
						Type:        genai.TypeString,
						Description: "The name of the asset, as returned by ListAssets.",
					},
				},
				Required: []string{"asset"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			name, ok := args["asset"].(string)
			if !ok {
				return "", fmt.Errorf("argument 'asset' is not a string as expected but %T", args["asset"])
			}
			a, err := repo.Import(name)
			if a == nil {
				if err != nil {
					return "", fmt.Errorf("could not load asset %q: %w", name, err)
				}
				return "", fmt.Errorf("there is no asset %q, use ListAssets", name)
			}
			r, err := renderer.NewReport(a)
			if err != nil {
				return "", err
			}
			return renderer.RenderReport(r, renderer.ReportOptions{}), nil
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
