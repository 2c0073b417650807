package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAdapter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerAdapterWithWriter(&buf, "production")

	log.Info("Motorbike created", map[string]interface{}{"motorbike_id": "m1"})
	log.Debug("hidden in production", nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Motorbike created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "m1", entry["motorbike_id"])
}

func TestLoggerAdapter_DevelopmentIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerAdapterWithWriter(&buf, "development")

	log.Debug("loading rentals", map[string]interface{}{"count": 3})
	assert.Contains(t, buf.String(), "loading rentals")
	assert.Contains(t, buf.String(), "count=3")
}
