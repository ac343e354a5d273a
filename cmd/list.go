package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type listCmd struct {
	g *Globals
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all assets" }
func (*listCmd) Usage() string {
	return `dca list

  Lists the names of all the assets, one per line.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	names, err := app.session.ListAssets()
	if err != nil {
		return c.g.failed(err)
	}
	for _, n := range names {
		fmt.Fprintln(c.g.Stdout, n)
	}
	return subcommands.ExitSuccess
}
