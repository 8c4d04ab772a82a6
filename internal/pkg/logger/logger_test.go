//go:build unit
// +build unit

package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		expected string
	}{
		{"empty", nil, ""},
		{"concatenates", []interface{}{"hello", "world"}, "helloworld"},
		{"format string", []interface{}{"shift %d over %s", 3, "EN"}, "shift 3 over EN"},
		{"single string with verb", []interface{}{"100%"}, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatArgs(tt.args...))
		})
	}
}

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelWarning)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("visible warn")
	l.Error("visible error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
	assert.Contains(t, out, "visible error")
}

func TestNewConsoleLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, config.LogLevelInfo)

	l.Info("Polybius encoding over %dx%d square", 5, 5)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "Polybius encoding over 5x5 square")
}

func TestSlogLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelInfo)

	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("boom")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom")
}

func TestSlogLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "bad state", func() {
		l.Panic("bad state")
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		settings    *config.LoggerSettings
		expectError bool
	}{
		{
			name:     "console",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole},
		},
		{
			name: "file",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				FilePath:   filepath.Join(t.TempDir(), "cryptology.log"),
				MaxSize:    1,
				MaxBackups: 1,
				MaxAge:     1,
			},
		},
		{
			name:        "nil settings",
			settings:    nil,
			expectError: true,
		},
		{
			name:        "invalid level",
			settings:    &config.LoggerSettings{LogLevel: "loud", LogType: config.LogTypeConsole},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := newLogger(tt.settings)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestInitAndGetLogger(t *testing.T) {
	err := InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole})
	require.NoError(t, err)

	l, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, l)
}
