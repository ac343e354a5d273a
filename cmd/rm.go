package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

type rmCmd struct {
	g     *Globals
	asset string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove purchases" }
func (*rmCmd) Usage() string {
	return `dca rm [-a <asset>] <id>...

  Removes the purchases with the given ids, as displayed by 'dca show'.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset to edit. Defaults to the only asset if one exists.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(c.g.Stderr, "Error: rm requires at least one purchase id.")
		return subcommands.ExitUsageError
	}
	ids := make([]int, 0, f.NArg())
	for _, arg := range f.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			fmt.Fprintf(c.g.Stderr, "Error: invalid purchase id %q.\n", arg)
			return subcommands.ExitUsageError
		}
		ids = append(ids, id)
	}

	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	if _, err := app.load(c.asset); err != nil {
		return c.g.failed(err)
	}

	status := subcommands.ExitSuccess
	for _, id := range ids {
		removed, err := app.session.RemovePurchase(id)
		switch {
		case err != nil:
			return c.g.failed(err)
		case !removed:
			fmt.Fprintf(c.g.Stderr, "Error: no purchase #%d.\n", id)
			status = subcommands.ExitFailure
		default:
			fmt.Fprintf(c.g.Stdout, "Removed purchase #%d.\n", id)
		}
	}
	return status
}
