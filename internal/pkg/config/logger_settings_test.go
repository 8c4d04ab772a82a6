//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileSettings(mutate func(*LoggerSettings)) *LoggerSettings {
	s := &LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/cryptology/cryptology.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings *LoggerSettings
		wantErr  bool
	}{
		{"console", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, false},
		{"file with rotation", fileSettings(nil), false},
		{"critical level", fileSettings(func(s *LoggerSettings) { s.LogLevel = LogLevelCritical }), false},
		{"no level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown level", &LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole}, true},
		{"no type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"unknown type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file without path", fileSettings(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file without rotation", fileSettings(func(s *LoggerSettings) { s.MaxSize, s.MaxBackups, s.MaxAge = 0, 0, 0 }), true},
		{"max size too large", fileSettings(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"max backups too large", fileSettings(func(s *LoggerSettings) { s.MaxBackups = 11 }), true},
		{"max age too large", fileSettings(func(s *LoggerSettings) { s.MaxAge = 366 }), true},
		{"console keeps valid rotation values", fileSettings(func(s *LoggerSettings) { s.LogType = LogTypeConsole }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_WritesToFile(t *testing.T) {
	assert.True(t, fileSettings(nil).WritesToFile())
	assert.False(t, (&LoggerSettings{LogType: LogTypeConsole}).WritesToFile())
}
