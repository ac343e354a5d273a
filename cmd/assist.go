package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/dca/agent"
	"github.com/etnz/dca/config"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	g   *Globals
	raw bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI assistant about your assets" }
func (*assistCmd) Usage() string {
	return `dca assist [-md] [<question>...]

  Starts an interactive session with an assistant that can read, but not
  modify, your assets. The question given as arguments is asked first.

  It requires a Gemini API key, in ` + config.EnvAPIKey + ` or in the
  configuration file.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "md", false, "Print raw markdown answers.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	if app.cfg.Assistant.APIKey == "" {
		fmt.Fprintf(c.g.Stderr, "Error: assist requires a Gemini API key, set %s.\n", config.EnvAPIKey)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  app.cfg.Assistant.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintf(c.g.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(c.g.Stdout, c.g.Stdin, agent.NewAdvisor(app.repo, app.cfg.Assistant.Model))
	if !c.raw {
		a.Render = renderMarkdown
	}
	app.log.Debug().Str("model", app.cfg.Assistant.Model).Msg("assistant started")

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintf(c.g.Stderr, "Error: assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
