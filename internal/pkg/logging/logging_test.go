package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"agrirent/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should default to text at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := logging.New(buf, "", "")
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("shown", "component", "test")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "component=test")
	})

	t.Run("should write json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := logging.New(buf, "debug", "JSON")
		require.NoError(t, err)

		logger.Debug("details", "count", 2)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "details", line["msg"])
		assert.Equal(t, "DEBUG", line["level"])
	})

	t.Run("should reject unknown settings", func(t *testing.T) {
		_, err := logging.New(&bytes.Buffer{}, "verbose", "text")
		require.Error(t, err)

		_, err = logging.New(&bytes.Buffer{}, "info", "xml")
		require.Error(t, err)
	})
}
