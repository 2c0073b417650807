package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

type LoggerAdapter struct {
	log *slog.Logger
}

// NewLoggerAdapter logs JSON to stdout in production and text otherwise.
func NewLoggerAdapter(env string) *LoggerAdapter {
	return NewLoggerAdapterWithWriter(os.Stdout, env)
}

func NewLoggerAdapterWithWriter(w io.Writer, env string) *LoggerAdapter {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	}
	return &LoggerAdapter{log: slog.New(handler)}
}

// NewNop discards everything.
func NewNop() *LoggerAdapter {
	return &LoggerAdapter{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.log.Error(msg, attrs(fields)...)
}

func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(fields))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
