// Package config loads the settings of the dca command line.
//
// Values come, by increasing precedence, from the defaults, an optional YAML
// file, and DCA_* environment variables (a .env file in the working directory
// is loaded into the environment first).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "dca.yaml"

// Environment variables.
const (
	EnvAssetsDir = "DCA_ASSETS_DIR"
	EnvFormat    = "DCA_FORMAT"
	EnvLogLevel  = "DCA_LOG_LEVEL"
	EnvCurrency  = "DCA_CURRENCY"
	EnvDrawdown  = "DCA_DRAWDOWN"
	EnvModel     = "DCA_MODEL"
	EnvAPIKey    = "GEMINI_API_KEY"
)

// Config holds the command line configuration.
type Config struct {
	AssetsDir string `yaml:"assets_dir" validate:"required"`
	Format    string `yaml:"format" validate:"oneof=xlsx jsonl"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Pretty    bool   `yaml:"pretty"`

	// Defaults for new assets.
	Currency string `yaml:"currency" validate:"oneof=PLN USD EUR GBP BTC ETH"`
	Drawdown string `yaml:"drawdown" validate:"numeric"`

	Assistant struct {
		Model  string `yaml:"model" validate:"required"`
		APIKey string `yaml:"api_key"`
	} `yaml:"assistant"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	c := &Config{
		AssetsDir: "Assets",
		Format:    "xlsx",
		LogLevel:  "info",
		Currency:  "USD",
		Drawdown:  "15.0",
	}
	c.Assistant.Model = "gemini-2.5-flash"
	return c
}

// Load reads the configuration. A missing file is not an error, unless it
// was explicitly named. An empty path means DefaultFile.
func Load(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.AssetsDir = getEnv(EnvAssetsDir, c.AssetsDir)
	c.Format = getEnv(EnvFormat, c.Format)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.Currency = getEnv(EnvCurrency, c.Currency)
	c.Drawdown = getEnv(EnvDrawdown, c.Drawdown)
	c.Assistant.Model = getEnv(EnvModel, c.Assistant.Model)
	c.Assistant.APIKey = getEnv(EnvAPIKey, c.Assistant.APIKey)
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
