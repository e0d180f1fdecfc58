package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAdapter_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerAdapterWithWriter("prod", &buf)

	log.Debug("hidden", nil)
	log.Info("Login failed", map[string]interface{}{"reason": "invalid_credentials"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Login failed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])

	fields, ok := entry["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "invalid_credentials", fields["reason"])
}

func TestLoggerAdapter_DevIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerAdapterWithWriter("dev", &buf)

	log.Debug("token rejected", map[string]interface{}{"kind": "expired"})

	assert.Contains(t, buf.String(), "token rejected")
	assert.Contains(t, buf.String(), "level=DEBUG")
}
