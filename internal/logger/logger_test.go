package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, true)
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("diagnosis completed", zap.String("request_id", "abc"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "diagnosis completed", entry["message"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithoutFile(t *testing.T) {
	log, err := New("", false)
	require.NoError(t, err)
	assert.NotNil(t, log)
}
