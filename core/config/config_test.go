package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelhttp/keel/core/config"
)

func TestLoadDefaults(t *testing.T) {
	type defaultsConfig struct {
		Host string `env:"TEST_CFG_HOST" envDefault:"127.0.0.1"`
		Port int    `env:"TEST_CFG_PORT" envDefault:"9000"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	type envConfig struct {
		Name    string `env:"TEST_CFG_NAME" envDefault:"fallback"`
		Workers int    `env:"TEST_CFG_WORKERS" envDefault:"1"`
	}

	t.Setenv("TEST_CFG_NAME", "custom")
	t.Setenv("TEST_CFG_WORKERS", "12")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 12, cfg.Workers)
}

func TestLoadRequired(t *testing.T) {
	type requiredConfig struct {
		Secret string `env:"TEST_CFG_SECRET,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_CFG_SECRET")
}

func TestLoadCachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CFG_CACHED" envDefault:"x"`
	}

	t.Setenv("TEST_CFG_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// The environment changes, the cached value does not.
	t.Setenv("TEST_CFG_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestMustLoadPanics(t *testing.T) {
	type mustConfig struct {
		Token string `env:"TEST_CFG_TOKEN,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
