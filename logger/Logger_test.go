package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	props := "logFilename=test.log\nmaxSize=1\nmaxBackups=1\nmaxAge=1\ncompress=false\nlevel=Debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logger.properties"), []byte(props), 0o644))

	l := NewLogger()
	require.NoError(t, l.Init(dir))
	l.Session("session-1")
	l.Debug("球回到起始位置")

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
	assert.Equal(t, "球回到起始位置", line["msg"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "session-1", line["session"])
}

func TestInitWithoutPropertiesUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	l := NewLogger()
	require.NoError(t, l.Init(dir))
	l.Info("hello")
	l.Debug("filtered")

	data, err := os.ReadFile(filepath.Join(dir, "pongo.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), "filtered", "Default level should be Info")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.TraceLevel, parseLevel("Trace"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("Info"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("Warn"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("Error"))
	assert.Equal(t, logrus.FatalLevel, parseLevel("Fatal"))
	assert.Equal(t, logrus.DebugLevel, parseLevel("anything else"))
}

func TestNewLoggerDiscards(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.Warn("dropped")

	l.SetOutput(&buf)
	l.SetLevel("Warn")
	l.Info("below level")
	l.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.NotContains(t, buf.String(), "below level")
	assert.Contains(t, buf.String(), "kept")
}
