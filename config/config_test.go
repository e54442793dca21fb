package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := Load("")

		require.NoError(t, err)
		require.Equal(t, &Config{
			LogLevel:    "info",
			LogFormat:   "console",
			Seed:        1,
			MaxMoves:    120,
			Perspective: 0,
		}, config)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\nlog-format: json\nseed: 42\nmax-moves: 30\nperspective: 1\n")

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", config.LogLevel)
		require.Equal(t, "json", config.LogFormat)
		require.Equal(t, uint64(42), config.Seed)
		require.Equal(t, 30, config.MaxMoves)
		require.Equal(t, 1, config.Perspective)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("OTHELLO_SEED", "9")
		t.Setenv("OTHELLO_LOG_LEVEL", "warn")
		path := writeConfig(t, "log-level: debug\nseed: 42\n")

		config, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, uint64(9), config.Seed)
		require.Equal(t, "warn", config.LogLevel)

		config, err = Load("")
		require.NoError(t, err)
		require.Equal(t, uint64(9), config.Seed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("OTHELLO_PERSPECTIVE", "2")

		_, err := Load("")
		require.ErrorContains(t, err, "perspective")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", LogFormat: "console", Seed: 1, MaxMoves: 120}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"log level":   func(c *Config) { c.LogLevel = "trace" },
		"log format":  func(c *Config) { c.LogFormat = "xml" },
		"max moves":   func(c *Config) { c.MaxMoves = 0 },
		"perspective": func(c *Config) { c.Perspective = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
