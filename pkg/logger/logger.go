// Package logger provides opinionated logging capabilities for recruit
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger logs to stderr so log lines never mix with command output on
// stdout.
func NewLogger(debug bool) *zap.Logger {
	return NewLoggerWithWriters(debug, os.Stderr)
}

func NewLoggerWithWriters(debug bool, writers ...io.Writer) *zap.Logger {
	if len(writers) == 0 {
		writers = []io.Writer{os.Stderr}
	}
	return zap.New(newCore(debug, zapcore.CapitalColorLevelEncoder, writers), zap.AddCaller())
}

// NewFileLogger appends uncolored log lines to the file at path, creating it
// and its directory if needed. Extra writers receive the same lines. The
// returned function closes the file.
func NewFileLogger(debug bool, path string, writers ...io.Writer) (*zap.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	all := append([]io.Writer{f}, writers...)
	l := zap.New(newCore(debug, zapcore.CapitalLevelEncoder, all), zap.AddCaller())

	return l, func() error {
		_ = l.Sync()
		return f.Close()
	}, nil
}

func newCore(debug bool, levelEncoder zapcore.LevelEncoder, writers []io.Writer) zapcore.Core {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = levelEncoder

	// Set log level
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	syncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, writer := range writers {
		syncers = append(syncers, zapcore.AddSync(writer))
	}

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		level,
	)
}
