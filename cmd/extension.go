package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/dca/config"
)

// RunExtension attempts to find and execute an external dca-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global flags are passed to the extension as the environment variables
// they override.
func RunExtension(g *Globals, subcommand string, args []string) (bool, int) {
	name := "dca-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = g.Stdin
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr

	cmd.Env = os.Environ()
	if g.AssetsDir != "" {
		cmd.Env = append(cmd.Env, config.EnvAssetsDir+"="+g.AssetsDir)
	}
	if g.Format != "" {
		cmd.Env = append(cmd.Env, config.EnvFormat+"="+g.Format)
	}
	if g.Verbose {
		cmd.Env = append(cmd.Env, config.EnvLogLevel+"=debug")
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(g.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
