package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	g *Globals
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an asset and its file" }
func (*deleteCmd) Usage() string {
	return `dca delete <name>...

  Deletes the assets, with all their purchases.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(c.g.Stderr, "Error: delete requires at least one asset name.")
		return subcommands.ExitUsageError
	}
	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	status := subcommands.ExitSuccess
	for _, name := range f.Args() {
		deleted, err := app.session.DeleteAsset(name)
		switch {
		case err != nil:
			status = c.g.failed(err)
		case !deleted:
			fmt.Fprintf(c.g.Stderr, "Error: %v %q\n", errNoSuchAsset, name)
			status = subcommands.ExitFailure
		default:
			fmt.Fprintf(c.g.Stdout, "Deleted asset %q.\n", name)
		}
	}
	return status
}
