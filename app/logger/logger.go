// Package logger builds the application zap logger from configuration
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/amirphl/copydesk/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger bundles the structured logger with the writer it emits to, so
// access logs can share the same destination.
type Logger struct {
	*zap.Logger
	Writer io.Writer
	closer io.Closer
}

// New builds a logger writing to stdout, a rotated file, or both
func New(cfg config.LoggingConfig) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var (
		writers []io.Writer
		closer  io.Closer
	)
	switch cfg.Output {
	case "", "stdout":
		writers = append(writers, os.Stdout)
	case "file", "both":
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		closer = rotator
		writers = append(writers, rotator)
		if cfg.Output == "both" {
			writers = append(writers, os.Stdout)
		}
	default:
		return nil, fmt.Errorf("unsupported log output %q", cfg.Output)
	}

	writer := io.MultiWriter(writers...)
	core := zapcore.NewCore(encoder(cfg.Format), zapcore.AddSync(writer), level)

	var opts []zap.Option
	if cfg.EnableCaller {
		opts = append(opts, zap.AddCaller())
	}
	if cfg.EnableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &Logger{
		Logger: zap.New(core, opts...),
		Writer: writer,
		closer: closer,
	}, nil
}

func encoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" || format == "text" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// Close flushes buffered entries and closes the rotated file, if any
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
