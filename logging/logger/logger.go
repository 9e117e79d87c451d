// Package logger provides a structured, context-aware logger for the
// example applications and tooling, backed by logrus.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config controls logger construction.
type Config struct {
	Level      int    // logrus level, 0 uses InfoLevel
	Format     string // "json" or "text"
	Output     string // "stdout", "stderr" or "file"
	OutputFile string // file path when Output is "file"
}

// Logger wraps a logrus logger with context-aware key/value methods.
type Logger struct {
	l *logrus.Logger
}

var std = &Logger{l: logrus.New()}

// New configures the standard logger from cfg and returns a cleanup
// function that flushes and closes any open output file.
func New(cfg *Config) (func(), error) {
	if cfg == nil {
		cfg = &Config{}
	}

	level := logrus.InfoLevel
	if cfg.Level != 0 {
		level = logrus.Level(cfg.Level)
	}
	std.l.SetLevel(level)

	if cfg.Format == "json" {
		std.l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		std.l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	cleanup := func() {}
	var out io.Writer = os.Stdout
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}
	std.l.SetOutput(out)

	return cleanup, nil
}

// StdLogger returns the standard logger.
func StdLogger() *Logger {
	return std
}

// Debug logs a message at debug level with key/value pairs.
func (lg *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv...).Debug(msg)
}

// Info logs a message at info level with key/value pairs.
func (lg *Logger) Info(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv...).Info(msg)
}

// Warn logs a message at warn level with key/value pairs.
func (lg *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv...).Warn(msg)
}

// Error logs a message at error level with key/value pairs.
func (lg *Logger) Error(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv...).Error(msg)
}

// entry builds a logrus entry carrying the trace ID from ctx and the
// given key/value pairs. A trailing key without a value is dropped.
func (lg *Logger) entry(ctx context.Context, kv ...any) *logrus.Entry {
	fields := logrus.Fields{}
	if traceID := GetTraceID(ctx); traceID != "" {
		fields["trace_id"] = traceID
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[key] = kv[i+1]
	}
	return lg.l.WithFields(fields)
}
