package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/config"
)

type serverConfig struct {
	Addr     string        `env:"ADDR" envDefault:":8080"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Debug    bool          `env:"DEBUG"`
	Required string        `env:"TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults and values", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[serverConfig](
			config.WithEnvFiles(),
			config.WithEnviron(map[string]string{"TOKEN": "t", "DEBUG": "true"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[serverConfig](
			config.WithEnvFiles(),
			config.WithPrefix("MAILFORGE_"),
			config.WithEnviron(map[string]string{"MAILFORGE_TOKEN": "t", "MAILFORGE_ADDR": ":9000", "ADDR": ":1"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load[serverConfig](config.WithEnvFiles(), config.WithEnviron(map[string]string{}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("env file fills gaps only", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TOKEN=from-file\nADDR=:7000\n"), 0o600))

		cfg, err := config.Load[serverConfig](
			config.WithEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")),
			config.WithEnviron(map[string]string{"ADDR": ":6000"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Required)
		assert.Equal(t, ":6000", cfg.Addr)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad[serverConfig](config.WithEnvFiles(), config.WithEnviron(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		config.MustLoad[serverConfig](config.WithEnvFiles(), config.WithEnviron(map[string]string{"TOKEN": "x"}))
	})
}
