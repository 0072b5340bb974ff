package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/liftmax/onerm"
)

const (
	EnvConfigPath = "LIFTMAX_CONFIG"
	EnvDecimals   = "LIFTMAX_DECIMALS"
	EnvFormula    = "LIFTMAX_FORMULA"
	EnvUnit       = "LIFTMAX_UNIT"
)

type Config struct {
	Estimate EstimateConfig `toml:"estimate"`
	Chart    ChartConfig    `toml:"chart"`
}

type EstimateConfig struct {
	Decimals int    `toml:"decimals"`
	Formula  string `toml:"formula"` // Empty means the average of every formula.
	Unit     string `toml:"unit"`    // Display label only, never converted.
}

type ChartConfig struct {
	Percentages []float64 `toml:"percentages"`
	Increment   float64   `toml:"increment"` // Plate rounding for chart loads, 0 disables it.
}

func Default() *Config {
	return &Config{
		Estimate: EstimateConfig{
			Decimals: onerm.DefaultDecimals,
			Unit:     "kg",
		},
		Chart: ChartConfig{
			Percentages: []float64{100, 95, 90, 85, 80, 75, 70, 65, 60},
			Increment:   2.5,
		},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "liftmax")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file at path (GetConfigPath when
// empty), falling back to the defaults when there is none. A .env file in the
// working directory and the LIFTMAX_* environment variables override the file.
func LoadConfig(path string) (*Config, error) {
	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// LoadFile decodes the config at path on top of the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDecimals); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDecimals, err)
		}
		c.Estimate.Decimals = d
	}
	if v, ok := os.LookupEnv(EnvFormula); ok {
		c.Estimate.Formula = v
	}
	if v := os.Getenv(EnvUnit); v != "" {
		c.Estimate.Unit = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Estimate.Decimals < 0 || c.Estimate.Decimals > onerm.MaxDecimals {
		return fmt.Errorf("estimate.decimals: %w: %d", onerm.ErrInvalidDecimals, c.Estimate.Decimals)
	}
	if _, err := c.Formula(); err != nil {
		return fmt.Errorf("estimate.formula: %w", err)
	}
	if c.Chart.Increment < 0 {
		return fmt.Errorf("chart.increment must not be negative, got %v", c.Chart.Increment)
	}
	for _, p := range c.Chart.Percentages {
		if p <= 0 {
			return fmt.Errorf("chart.percentages must be positive, got %v", p)
		}
	}
	return nil
}

// Formula returns the configured default formula, or "" for the average.
func (c *Config) Formula() (onerm.Formula, error) {
	if c.Estimate.Formula == "" {
		return "", nil
	}
	return onerm.ParseFormula(c.Estimate.Formula)
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return f.Close()
}
