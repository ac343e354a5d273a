package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	g             *Globals
	asset         string
	html          string
	raw           bool
	skipPurchases bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display an asset's purchases, break-even and next purchase price" }
func (*showCmd) Usage() string {
	return `dca show [-a <asset>] [-md] [-no-purchases] [-html <file>]

  Displays the report of an asset: every purchase, the totals, the
  break-even price and the price at which to buy next.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset to report on. Defaults to the only asset if one exists.")
	f.StringVar(&c.html, "html", "", "Also write the report as an HTML page to this file.")
	f.BoolVar(&c.raw, "md", false, "Print raw markdown instead of rendering it for the terminal.")
	f.BoolVar(&c.skipPurchases, "no-purchases", false, "Do not display the purchases.")
}

func (c *showCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.g.open()
	if err != nil {
		return c.g.failed(err)
	}
	asset, err := app.load(c.asset)
	if err != nil {
		return c.g.failed(err)
	}
	r, err := renderer.NewReport(asset)
	if err != nil {
		return c.g.failed(err)
	}
	md := renderer.RenderReport(r, renderer.ReportOptions{SkipPurchases: c.skipPurchases})

	if c.html != "" {
		if err := writeHTML(c.html, asset.Name, md); err != nil {
			return c.g.failed(err)
		}
		app.log.Debug().Str("file", c.html).Msg("report written")
	}

	if c.raw {
		fmt.Fprint(c.g.Stdout, md)
	} else {
		c.g.printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

func writeHTML(path, title, md string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return renderer.HTML(f, title, md)
}
