package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds server settings. Defaults cover everything; a YAML file and
// command-line flags may override.
type Config struct {
	Addr      string `yaml:"addr"`
	DataDir   string `yaml:"dataDir"`
	SourceURL string `yaml:"sourceUrl"`
	// SourceTimeout bounds each remote puzzle fetch, in seconds.
	SourceTimeout int    `yaml:"sourceTimeout"`
	LogLevel      string `yaml:"logLevel"`
	// HintSeed fixes the random hint selection; 0 seeds from the clock.
	HintSeed int64 `yaml:"hintSeed"`
}

func Default() Config {
	return Config{
		Addr:          ":8080",
		DataDir:       "./data",
		SourceURL:     "https://sugoku.onrender.com/board?difficulty=random",
		SourceTimeout: 10,
		LogLevel:      "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name onto slog, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
