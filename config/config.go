package config

import (
	"fmt"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	LogFormat   string `yaml:"log-format" env:"OTHELLO_LOG_FORMAT" env-default:"console"`
	Seed        uint64 `yaml:"seed" env:"OTHELLO_SEED" env-default:"1"`
	MaxMoves    int    `yaml:"max-moves" env:"OTHELLO_MAX_MOVES" env-default:"120"`
	Perspective int    `yaml:"perspective" env:"OTHELLO_PERSPECTIVE" env-default:"0"`
}

// Load reads the yaml file at path, then applies environment overrides. With
// an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if !slices.Contains([]string{"console", "json"}, c.LogFormat) {
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("max moves must be positive, got %d", c.MaxMoves)
	}
	if c.Perspective != 0 && c.Perspective != 1 {
		return fmt.Errorf("perspective must be player 0 or 1, got %d", c.Perspective)
	}
	return nil
}
