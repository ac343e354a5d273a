package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/dca/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	g  *Globals
	md bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the manual" }
func (*topicCmd) Usage() string {
	return `dca topic [-md] [<topic>...]

  Prints the manual topics, or their index. '*' prints every topic.
  Topics: ` + strings.Join(docs.Topics(), ", ") + `
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.md, "md", false, "Print raw markdown.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := docs.Read(f.Args()...)
	if err != nil {
		return c.g.failed(fmt.Errorf("cannot read the manual: %w", err))
	}
	if c.md {
		fmt.Fprint(c.g.Stdout, doc)
		return subcommands.ExitSuccess
	}
	c.g.printMarkdown(doc)
	return subcommands.ExitSuccess
}
