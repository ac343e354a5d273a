package cmd

import (
	"github.com/etnz/dca"
	"github.com/etnz/dca/config"
	"github.com/etnz/dca/docs"
	"github.com/etnz/dca/store"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Asset names are predicted from the store named by the configuration, as the
// global flags of the line being completed are unknown.
func Completion(g *Globals) *complete.Command {
	assets := complete.PredictFunc(func(prefix string) []string {
		cfg, err := config.Load(g.ConfigFile)
		if err != nil {
			return nil
		}
		repo, err := store.New(cfg.AssetsDir, cfg.Format)
		if err != nil {
			return nil
		}
		names, _ := repo.List()
		return names
	})

	codes := make(predict.Set, 0, len(dca.Currencies()))
	for _, c := range dca.Currencies() {
		codes = append(codes, c.Code())
	}
	percents := predict.Set{"5", "10", "15", "20", "25"}
	topics := docs.Topics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.yaml"),
			"assets-dir": predict.Dirs("*"),
			"format":     predict.Set{store.FormatXLSX, store.FormatJSONL},
			"v":          predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"new": {Flags: map[string]complete.Predictor{
				"c":  codes,
				"dd": percents,
				"f":  predict.Nothing,
			}},
			"list":   {},
			"delete": {Args: assets},
			"set": {Flags: map[string]complete.Predictor{
				"a":  assets,
				"c":  codes,
				"dd": percents,
			}},
			"buy": {Flags: map[string]complete.Predictor{"a": assets}},
			"rm":  {Flags: map[string]complete.Predictor{"a": assets}},
			"show": {Flags: map[string]complete.Predictor{
				"a":            assets,
				"md":           predict.Nothing,
				"no-purchases": predict.Nothing,
				"html":         predict.Files("*.html"),
			}},
			"get": {Flags: map[string]complete.Predictor{
				"a": assets,
				"q": predict.Set{"$.next_price", "$.break_even", "$.purchases[*]"},
			}},
			"assist": {Flags: map[string]complete.Predictor{"md": predict.Nothing}},
			"topic": {
				Flags: map[string]complete.Predictor{"md": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
