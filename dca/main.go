// Command dca tracks drawdown based dollar cost averaging of assets.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dca/cmd"
	"github.com/google/subcommands"
)

func main() {
	g := cmd.NewGlobals()
	g.SetFlags(flag.CommandLine)

	// Exits when invoked by the shell to complete a command line.
	cmd.Completion(g).Complete("dca")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, g)

	flag.Parse()

	// Unknown subcommands are looked up as dca-<name> binaries.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(g, name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}
