package config

import (
	"errors"
	"fmt"
	"strings"

	"skirmish/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the CLI
type Config struct {
	Search     SearchConfig     `mapstructure:"search"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Log        LogConfig        `mapstructure:"log"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

// SearchConfig holds alpha-beta settings
type SearchConfig struct {
	Depth int `mapstructure:"depth"`
}

// EngineConfig holds self-play settings
type EngineConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
}

// LogConfig holds zerolog settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// ExperimentConfig holds depth experiment settings
type ExperimentConfig struct {
	Name      string `mapstructure:"name"`
	OutputDir string `mapstructure:"output_dir"`
	Games     int    `mapstructure:"games"`
	Baseline  int    `mapstructure:"baseline"`
	Depths    []int  `mapstructure:"depths"`
}

const envPrefix = "SKIRMISH"

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("search.depth", meta.DEFAULT_DEPTH)

	v.SetDefault("engine.max_turns", meta.MAX_TURNS)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("experiment.name", "depth")
	v.SetDefault("experiment.output_dir", "results")
	v.SetDefault("experiment.games", 10)
	v.SetDefault("experiment.baseline", 1)
	v.SetDefault("experiment.depths", []int{1, 2, 3})
}

// Load reads defaults, then the YAML file at path (if any), then SKIRMISH_*
// environment variables, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setViperDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config.yaml in the working directory; use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values
func Validate(cfg *Config) error {
	if cfg.Search.Depth <= 0 {
		return fmt.Errorf("search.depth must be positive, got %d", cfg.Search.Depth)
	}
	if cfg.Engine.MaxTurns <= 0 {
		return fmt.Errorf("engine.max_turns must be positive, got %d", cfg.Engine.MaxTurns)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", cfg.Log.Format)
	}
	if cfg.Experiment.Games <= 0 {
		return fmt.Errorf("experiment.games must be positive, got %d", cfg.Experiment.Games)
	}
	if cfg.Experiment.Baseline <= 0 {
		return fmt.Errorf("experiment.baseline must be positive, got %d", cfg.Experiment.Baseline)
	}
	for _, depth := range cfg.Experiment.Depths {
		if depth <= 0 {
			return fmt.Errorf("experiment.depths must be positive, got %d", depth)
		}
	}
	return nil
}
