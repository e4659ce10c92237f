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
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNoopLogger(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("debug")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	msgs := l.Snapshot()
	require.Len(t, msgs, 4)

	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, msgs[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info msg"}, msgs[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warn msg"}, msgs[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "error msg"}, msgs[3])
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()

	assert.False(t, l.HasLevel("debug"))

	l.Debug("test")
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))

	l.Error("test")
	assert.True(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test1")
	l.Info("test2")
	require.Len(t, l.Snapshot(), 2)

	l.Clear()
	assert.Empty(t, l.Snapshot())
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	assert.NotNil(t, Default())

	buf := NewBufferLogger()
	SetDefault(buf)

	assert.Equal(t, buf, Default())
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core), "feed")

	l.Debug("status %s", "connected")
	l.Info("engine started")
	l.Warn("slow tick %dms", 900)
	l.Error("render failed")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "status connected", entries[0].Message)
	assert.Equal(t, "feed", entries[0].LoggerName)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "slow tick 900ms", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "apex.log")

	l, closeFn, err := NewFileLogger(FileOptions{Path: path})
	require.NoError(t, err)

	l.Debug("hidden at info level")
	l.Info("engine started seed=%d", 7)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "engine started seed=7", entry["msg"])
	assert.Equal(t, "apex", entry["logger"])
}

func TestNewFileLogger_Debug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apex.log")

	l, closeFn, err := NewFileLogger(FileOptions{Path: path, Debug: true})
	require.NoError(t, err)

	l.Debug("lag spike")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lag spike")
}

func TestDefaultLogPath(t *testing.T) {
	p := DefaultLogPath()
	assert.Equal(t, "apex.log", filepath.Base(p))
	assert.Equal(t, "apex", filepath.Base(filepath.Dir(p)))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 5, orDefault(0, 5))
	assert.Equal(t, 5, orDefault(-1, 5))
	assert.Equal(t, 2, orDefault(2, 5))
}
