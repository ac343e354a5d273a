package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type getCmd struct {
	g     *Globals
	asset string
	query string
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "print an asset as JSON, or query it" }
func (*getCmd) Usage() string {
	return `dca get [-a <asset>] [-q <jsonpath>]

  Prints the asset and its computed figures as a JSON object. Decimal values
  are strings, values that cannot be computed are null.

  With -q only the result of the JSONPath expression is printed, e.g.

    dca get -q '$.next_price'
    dca get -q '$.purchases[*].quantity'
`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset to print. Defaults to the only asset if one exists.")
	f.StringVar(&c.query, "q", "", "JSONPath expression to evaluate on the asset.")
}

// snapshot is the JSON representation of an asset.
type snapshot struct {
	Asset           string              `json:"asset"`
	Currency        string              `json:"currency"`
	Drawdown        decimal.Decimal     `json:"drawdown"`
	Created         string              `json:"created"`
	Updated         string              `json:"updated"`
	Purchases       []purchase          `json:"purchases"`
	TotalInvestment decimal.NullDecimal `json:"total_investment"`
	TotalQuantity   decimal.NullDecimal `json:"total_quantity"`
	BreakEven       decimal.NullDecimal `json:"break_even"`
	LastPrice       decimal.NullDecimal `json:"last_price"`
	NextPrice       decimal.NullDecimal `json:"next_price"`
}

type purchase struct {
	ID         int             `json:"id"`
	Date       string          `json:"date"`
	Investment decimal.Decimal `json:"investment"`
	Price      decimal.Decimal `json:"price"`
	Quantity   decimal.Decimal `json:"quantity"`
}

func newSnapshot(a *dca.Asset) (*snapshot, error) {
	s, err := dca.Summarize(a)
	if err != nil {
		return nil, err
	}
	snap := &snapshot{
		Asset:           a.Name,
		Currency:        a.Currency.Code(),
		Drawdown:        a.Drawdown,
		Created:         date.Format(a.CreatedAt),
		Updated:         date.Format(a.UpdatedAt),
		Purchases:       []purchase{},
		TotalInvestment: s.TotalInvestment,
		TotalQuantity:   s.TotalQuantity,
		BreakEven:       s.BreakEven,
		LastPrice:       s.LastPrice,
		NextPrice:       s.NextPrice,
	}
	for _, p := range a.Ledger.All() {
		snap.Purchases = append(snap.Purchases, purchase{
			ID:         p.ID,
			Date:       date.Format(p.Timestamp),
			Investment: p.Investment,
			Price:      p.Price,
			Quantity:   p.Quantity,
		})
	}
	return snap, nil
}

func (c *getCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	asset, err := app.load(c.asset)
	if err != nil {
		return c.g.failed(err)
	}
	snap, err := newSnapshot(asset)
	if err != nil {
		return c.g.failed(err)
	}

	var out any = snap
	if c.query != "" {
		// jsonpath works on the generic representation.
		data, err := json.Marshal(snap)
		if err != nil {
			return c.g.failed(err)
		}
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return c.g.failed(err)
		}
		if out, err = jsonpath.Get(c.query, v); err != nil {
			fmt.Fprintf(c.g.Stderr, "Error: invalid query %q: %v\n", c.query, err)
			return subcommands.ExitUsageError
		}
	}

	enc := json.NewEncoder(c.g.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return c.g.failed(err)
	}
	return subcommands.ExitSuccess
}
