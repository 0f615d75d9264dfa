package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))

		log.Info("hello", "store_id", "s1")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "s1", record["store_id"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("static attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("component", "reviews")),
		)

		log.Info("tick")

		assert.Contains(t, buf.String(), `"component":"reviews"`)
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()

		log := logger.NewFromConfig(logger.Config{Level: "verbose", Format: logger.FormatText})

		assert.True(t, log.Enabled(t.Context(), slog.LevelInfo))
		assert.False(t, log.Enabled(t.Context(), slog.LevelDebug))
	})

	t.Run("debug level", func(t *testing.T) {
		t.Parallel()

		log := logger.NewFromConfig(logger.Config{Level: "debug", Format: logger.FormatJSON})

		assert.True(t, log.Enabled(t.Context(), slog.LevelDebug))
	})
}

func TestParseLevelCaseInsensitive(t *testing.T) {
	t.Parallel()

	log := logger.NewFromConfig(logger.Config{Level: strings.ToUpper("warn")})

	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, log.Enabled(t.Context(), slog.LevelWarn))
}
