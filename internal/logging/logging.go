package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global zap instance for the application. It is a no-op
// logger until Init runs so packages can log unconditionally.
var Logger = zap.NewNop()

// Dir returns ~/.testdeck/logs
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".testdeck", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.testdeck/logs/testdeck.log.
// The TUI owns the terminal, so nothing is written to stdout or stderr.
func Init(level string) error {
	logDir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	return InitFile(filepath.Join(logDir, "testdeck.log"), level)
}

// InitFile points the global logger at path, appending to it
func InitFile(path string, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(file), lvl)

	Logger = zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(Logger)
	return nil
}

// ParseLevel accepts debug, info, warn and error; empty means info
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Sync flushes buffered entries; call before exit
func Sync() {
	_ = Logger.Sync()
}
