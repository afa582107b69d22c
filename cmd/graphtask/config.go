package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphtask/euler"
)

// Config is the file-backed run configuration. Flags set on the command line
// override values loaded from the file.
type Config struct {
	Vertices          int    `yaml:"vertices"`
	Edges             int    `yaml:"edges"`
	Seed              int64  `yaml:"seed"`
	Strategy          string `yaml:"strategy"`
	ConnectivityCheck bool   `yaml:"connectivity_check"`
	Trials            int    `yaml:"trials"`
	Workers           int    `yaml:"workers"`
	LogLevel          string `yaml:"log_level"`
}

// defaultConfig mirrors the classic demo run: four vertices, four edges.
func defaultConfig() Config {
	return Config{
		Vertices: 4,
		Edges:    4,
		Strategy: euler.StrategyRestart.String(),
		Trials:   100,
		Workers:  4,
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

var errInvalidConfig = errors.New("invalid config")

func (c Config) validate() error {
	if c.Vertices < 0 || c.Edges < 0 {
		return fmt.Errorf("%w: vertices=%d edges=%d must be non-negative", errInvalidConfig, c.Vertices, c.Edges)
	}
	if c.Trials < 1 || c.Workers < 1 {
		return fmt.Errorf("%w: trials=%d workers=%d must be positive", errInvalidConfig, c.Trials, c.Workers)
	}
	if _, err := euler.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseLevel maps debug/info/warn/error to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", errInvalidConfig, s)
	}

	return lvl, nil
}
