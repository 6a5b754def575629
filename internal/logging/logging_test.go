package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSONFields", func(t *testing.T) {
		var buf bytes.Buffer
		runID := NewRunID()
		logger, err := New(&buf, "info", runID)
		require.NoError(t, err)

		logger.Info().Int("elements", 2).Msg("dataset written")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "fakejson", line["service"])
		assert.Equal(t, runID, line["run_id"])
		assert.Equal(t, "info", line["level"])
		assert.Equal(t, "dataset written", line["message"])
		assert.EqualValues(t, 2, line["elements"])
		assert.Contains(t, line, "time")
	})

	t.Run("LevelFilters", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "warn", NewRunID())
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		assert.Zero(t, buf.Len())

		logger.Warn().Msg("shown")
		assert.NotZero(t, buf.Len())
	})

	t.Run("Disabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "disabled", NewRunID())
		require.NoError(t, err)

		logger.Error().Msg("hidden")
		assert.Zero(t, buf.Len())
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "loud", NewRunID())
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
