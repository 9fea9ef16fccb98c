package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderkit/pkg/config"
)

type cachedConfig struct {
	Value string `env:"ORDERKIT_TEST_CACHED" envDefault:"default"`
}

type numericConfig struct {
	Rate  float64 `env:"ORDERKIT_TEST_RATE" envDefault:"0.08"`
	Limit int     `env:"ORDERKIT_TEST_LIMIT" envDefault:"100"`
}

type requiredConfig struct {
	Required string `env:"ORDERKIT_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FromFile string `env:"ORDERKIT_TEST_FROM_FILE"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment and caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("ORDERKIT_TEST_CACHED", "first")

		var cfg cachedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "first", cfg.Value)

		t.Setenv("ORDERKIT_TEST_CACHED", "second")
		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value, "cached value expected")

		config.Reset()
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "second", again.Value)
	})

	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		var cfg numericConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 0.08, cfg.Rate)
		assert.Equal(t, 100, cfg.Limit)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	var cfg numericConfig
	require.NoError(t, config.Parse(&cfg, map[string]string{"ORDERKIT_TEST_LIMIT": "5"}))
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, 0.08, cfg.Rate)

	err := config.Parse(&cfg, map[string]string{"ORDERKIT_TEST_RATE": "abc"})
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.ErrorIs(t, config.Parse[numericConfig](nil, nil), config.ErrNilPointer)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ORDERKIT_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ORDERKIT_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg, map[string]string{"ORDERKIT_TEST_FROM_FILE": os.Getenv("ORDERKIT_TEST_FROM_FILE")}))
	assert.Equal(t, "from-file", cfg.FromFile)

	assert.NoError(t, config.LoadEnvFiles())
	assert.ErrorIs(t, config.LoadEnvFiles(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
}
