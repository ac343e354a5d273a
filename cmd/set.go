package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/dca"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

type setCmd struct {
	g        *Globals
	asset    string
	currency string
	drawdown string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change an asset's currency or drawdown" }
func (*setCmd) Usage() string {
	return `dca set [-a <asset>] [-c <currency>] [-dd <percent>]

  Changes the settings of an asset. Changing the currency does not convert
  the recorded amounts.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset to edit. Defaults to the only asset if one exists.")
	f.StringVar(&c.currency, "c", "", "New currency code: PLN, USD, EUR, GBP, BTC or ETH.")
	f.StringVar(&c.drawdown, "dd", "", "New drawdown percentage, between 0 and 100.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" && c.drawdown == "" {
		fmt.Fprintln(c.g.Stderr, "Error: set requires -c or -dd.")
		return subcommands.ExitUsageError
	}

	var cur dca.Currency
	if c.currency != "" {
		var err error
		if cur, err = dca.ParseCurrency(c.currency); err != nil {
			return c.g.failed(err)
		}
	}
	var dd dca.Validation
	if c.drawdown != "" {
		if dd = dca.ValidatePercent(c.drawdown); !dd.Valid {
			fmt.Fprintf(c.g.Stderr, "Error: invalid drawdown %q: %s\n", c.drawdown, dd.Message)
			return subcommands.ExitUsageError
		}
	}

	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	asset, err := app.load(c.asset)
	if err != nil {
		return c.g.failed(err)
	}
	if cur.Valid() {
		if err := app.session.SetCurrency(cur); err != nil {
			return c.g.failed(err)
		}
	}
	if dd.Valid {
		if err := app.session.SetDrawdownPercent(dd.Value); err != nil {
			return c.g.failed(err)
		}
	}
	fmt.Fprintf(c.g.Stdout, "Asset %q is in %s with a %s drawdown.\n",
		asset.Name, app.session.Currency(), renderer.FormatPercent(app.session.DrawdownPercent()))
	return subcommands.ExitSuccess
}
