package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/etnz/dca"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

type newCmd struct {
	g        *Globals
	currency string
	drawdown string
	force    bool
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a new asset" }
func (*newCmd) Usage() string {
	return `dca new [-c <currency>] [-dd <percent>] [-f] <name>

  Creates an empty asset. The name is also the name of the asset file, it
  cannot contain any of <>:"/\|?*

  Currency and drawdown default to the configuration.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency code: PLN, USD, EUR, GBP, BTC or ETH.")
	f.StringVar(&c.drawdown, "dd", "", "Drawdown percentage that triggers the next purchase.")
	f.BoolVar(&c.force, "f", false, "Overwrite an existing asset with the same name.")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.g.Stderr, "Error: new requires exactly one asset name.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	if v := dca.ValidateAssetName(name); !v.Valid {
		fmt.Fprintf(c.g.Stderr, "Error: %s\n", v.Message)
		return subcommands.ExitUsageError
	}

	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	if c.currency == "" {
		c.currency = app.cfg.Currency
	}
	if c.drawdown == "" {
		c.drawdown = app.cfg.Drawdown
	}
	cur, err := dca.ParseCurrency(c.currency)
	if err != nil {
		return c.g.failed(err)
	}
	dd := dca.ValidatePercent(c.drawdown)
	if !dd.Valid {
		fmt.Fprintf(c.g.Stderr, "Error: invalid drawdown %q: %s\n", c.drawdown, dd.Message)
		return subcommands.ExitUsageError
	}

	if !c.force {
		names, err := app.session.ListAssets()
		if err != nil {
			return c.g.failed(err)
		}
		if slices.Contains(names, name) {
			fmt.Fprintf(c.g.Stderr, "Error: asset %q already exists, use -f to overwrite it.\n", name)
			return subcommands.ExitFailure
		}
	}

	if _, err := app.session.CreateAsset(name, cur, dd.Value); err != nil {
		return c.g.failed(err)
	}
	fmt.Fprintf(c.g.Stdout, "Created asset %q in %s with a %s drawdown.\n", name, cur, renderer.FormatPercent(dd.Value))
	return subcommands.ExitSuccess
}
