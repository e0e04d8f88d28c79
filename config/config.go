// Package config provides configuration loading for lexstage. All paths
// and toggles are explicit values handed to the core entry points; the
// core packages never read ambient state.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the full lexstage configuration. Precedence, lowest to
// highest: defaults, config file, LEXSTAGE_* environment, command flags.
type Config struct {
	// Core is the core verb lexicon inputs (paths or glob patterns).
	Core []string `yaml:"core" env:"LEXSTAGE_CORE" envSeparator:","`
	// Rels is the relation vocabulary inputs (paths or glob patterns).
	Rels []string `yaml:"rels" env:"LEXSTAGE_RELS" envSeparator:","`
	// Seed is the combined seed document used by validate and merge.
	Seed string `yaml:"seed" env:"LEXSTAGE_SEED"`
	// OutDir is where staged artifacts are written.
	OutDir string `yaml:"outdir" env:"LEXSTAGE_OUTDIR"`
	// Format selects the artifact encoding (json or yaml).
	Format string `yaml:"format" env:"LEXSTAGE_FORMAT"`
	// DropVerbs strips the legacy verbs field from relation previews.
	DropVerbs bool `yaml:"drop_verbs" env:"LEXSTAGE_DROP_VERBS"`
	// LogLevel sets the slog level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"LEXSTAGE_LOG_LEVEL"`
}

// DefaultConfig returns a Config with the conventional repository layout.
func DefaultConfig() *Config {
	return &Config{
		Core:     []string{"data/core_verb_lexicon.yaml"},
		Rels:     []string{"data/rels_vocabulary.yaml"},
		Seed:     "data/seed-taxonomies.json",
		OutDir:   "dist/staged",
		Format:   "json",
		LogLevel: "info",
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Core) == 0 {
		return fmt.Errorf("core is required")
	}
	if len(c.Rels) == 0 {
		return fmt.Errorf("rels is required")
	}
	if c.OutDir == "" {
		return fmt.Errorf("outdir is required")
	}
	switch c.Format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("format must be json or yaml, got %q", c.Format)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// Load builds the effective configuration: defaults, then the optional
// config file, then LEXSTAGE_* environment overrides.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
