package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/dca"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type buyCmd struct {
	g     *Globals
	asset string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase" }
func (*buyCmd) Usage() string {
	return `dca buy [-a <asset>] <investment> <price>

  Records a purchase of 'investment' money at 'price' per unit. The quantity
  bought is computed. Both ',' and '.' are accepted as decimal separators.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset to buy. Defaults to the only asset if one exists.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(c.g.Stderr, "Error: buy requires an investment and a price.")
		return subcommands.ExitUsageError
	}
	investment := dca.ValidatePositiveDecimal(f.Arg(0))
	if !investment.Valid {
		fmt.Fprintf(c.g.Stderr, "Error: invalid investment %q: %s\n", f.Arg(0), investment.Message)
		return subcommands.ExitUsageError
	}
	price := dca.ValidatePositiveDecimal(f.Arg(1))
	if !price.Valid {
		fmt.Fprintf(c.g.Stderr, "Error: invalid price %q: %s\n", f.Arg(1), price.Message)
		return subcommands.ExitUsageError
	}

	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	asset, err := app.load(c.asset)
	if err != nil {
		return c.g.failed(err)
	}
	p, err := app.session.AddPurchase(investment.Value, price.Value)
	if err != nil {
		return c.g.failed(err)
	}

	cur := asset.Currency
	fmt.Fprintf(c.g.Stdout, "Purchase #%d of %s: %s units at %s for %s.\n",
		p.ID, asset.Name,
		renderer.FormatQuantity(decimal.NewNullDecimal(p.Quantity)),
		renderer.FormatMoney(decimal.NewNullDecimal(p.Price), cur),
		renderer.FormatMoney(decimal.NewNullDecimal(p.Investment), cur),
	)
	if s, err := app.session.Summary(); err == nil {
		fmt.Fprintf(c.g.Stdout, "Break-even price is %s, next purchase at %s.\n",
			renderer.FormatMoney(s.BreakEven, cur), renderer.FormatMoney(s.NextPrice, cur))
	}
	return subcommands.ExitSuccess
}
