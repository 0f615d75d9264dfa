package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/config"
)

type testConfig struct {
	Name    string `env:"CONFIG_TEST_NAME" envDefault:"bundler"`
	Retries int    `env:"CONFIG_TEST_RETRIES" envDefault:"3"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig

		err := config.Load(&cfg)

		require.NoError(t, err)
		assert.Equal(t, "bundler", cfg.Name)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("env value wins over default", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "custom")

		var cfg testConfig
		err := config.Load(&cfg)

		require.NoError(t, err)
		assert.Equal(t, "custom", cfg.Name)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)

		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_RETRIES", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)

		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_RETRIES", "boom")

		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
