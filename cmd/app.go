// Package cmd implements the dca subcommands.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/dca"
	"github.com/etnz/dca/config"
	"github.com/etnz/dca/logger"
	"github.com/etnz/dca/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Globals holds the flags shared by all the subcommands, and the standard
// streams they use.
type Globals struct {
	ConfigFile string
	AssetsDir  string
	Format     string
	Verbose    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewGlobals returns Globals bound to the process' standard streams.
func NewGlobals() *Globals {
	return &Globals{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// SetFlags declares the global flags on f.
func (g *Globals) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.ConfigFile, "config", "", "Configuration file. Defaults to "+config.DefaultFile+" if it exists.")
	f.StringVar(&g.AssetsDir, "assets-dir", "", "Folder containing one file per asset. Overrides the configuration.")
	f.StringVar(&g.Format, "format", "", "Asset file format, xlsx or jsonl. Overrides the configuration.")
	f.BoolVar(&g.Verbose, "v", false, "Verbose logging.")
}

// Register registers all the subcommands.
func Register(c *subcommands.Commander, g *Globals) {
	c.Register(&newCmd{g: g}, "assets")
	c.Register(&listCmd{g: g}, "assets")
	c.Register(&deleteCmd{g: g}, "assets")
	c.Register(&setCmd{g: g}, "assets")

	c.Register(&buyCmd{g: g}, "purchases")
	c.Register(&rmCmd{g: g}, "purchases")

	c.Register(&showCmd{g: g}, "reports")
	c.Register(&getCmd{g: g}, "reports")
	c.Register(&assistCmd{g: g}, "reports")

	c.Register(&topicCmd{g: g}, "help")
}

// app is what a subcommand needs once the configuration is loaded.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	repo    *store.File
	session *dca.Session
}

// open loads the configuration, the global flags taking precedence, and
// opens the asset store.
func (g *Globals) open() (*app, error) {
	cfg, err := config.Load(g.ConfigFile)
	if err != nil {
		return nil, err
	}
	if g.AssetsDir != "" {
		cfg.AssetsDir = g.AssetsDir
	}
	if g.Format != "" {
		cfg.Format = g.Format
	}
	if g.Verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.NewWriter(g.Stderr, logger.Config{Level: cfg.LogLevel, Pretty: true})

	repo, err := store.New(cfg.AssetsDir, cfg.Format)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dir", repo.Dir()).Str("format", cfg.Format).Msg("store opened")
	return &app{
		cfg:     cfg,
		log:     log,
		repo:    repo,
		session: dca.NewSession(repo, log),
	}, nil
}

// errNoSuchAsset is returned when the asset to work on does not exist.
var errNoSuchAsset = errors.New("no such asset")

// load makes the asset named 'name' current. If name is empty, the only
// asset in the store is used.
func (a *app) load(name string) (*dca.Asset, error) {
	if name == "" {
		names, err := a.session.ListAssets()
		if err != nil {
			return nil, err
		}
		switch len(names) {
		case 0:
			return nil, fmt.Errorf("there are no assets yet, create one with 'dca new'")
		case 1:
			name = names[0]
		default:
			return nil, fmt.Errorf("there are %d assets, select one with -a", len(names))
		}
	}
	asset, err := a.session.LoadAsset(name)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w %q", errNoSuchAsset, name)
	}
	return asset, nil
}

// failed reports err and returns the matching exit status.
func (g *Globals) failed(err error) subcommands.ExitStatus {
	fmt.Fprintf(g.Stderr, "Error: %v\n", err)
	if errors.Is(err, dca.ErrInvalidArgument) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
