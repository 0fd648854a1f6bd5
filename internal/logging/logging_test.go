package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestInitFile_WritesAtLevel(t *testing.T) {
	prev := Logger
	t.Cleanup(func() {
		Logger = prev
		zap.ReplaceGlobals(prev)
	})

	path := filepath.Join(t.TempDir(), "testdeck.log")
	require.NoError(t, InitFile(path, "warn"))

	Logger.Info("hidden")
	Logger.Warn("shown", zap.Int("planID", 7))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), `"planID": 7`)
}

func TestInitFile_BadLevel(t *testing.T) {
	err := InitFile(filepath.Join(t.TempDir(), "x.log"), "verbose")
	assert.Error(t, err)
}
