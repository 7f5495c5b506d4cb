package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logger used across the application.
// Services receive it as a dependency so tests can swap in a recorder.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields are top-level keys for structured log lines.
type Fields map[string]any

const defaultServiceName = "widia-api"

// Log is the process-wide logger. It works at info level even before Init.
var Log Logger = NewLogger("info")

// Init replaces the global logger with one at the configured level.
func Init(level string) {
	Log = NewLogger(level)
}

// ParseLevel maps a config level name to a gookit level. Empty or unknown
// names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "trace":
		return slog.DebugLevel
	case "warn", "warning":
		return slog.WarnLevel
	case "error":
		return slog.ErrorLevel
	default:
		return slog.InfoLevel
	}
}

// NewLogger writes JSON lines with datetime, level and message to the console.
// Extra Fields are emitted as top-level keys.
func NewLogger(level string) Logger {
	h := handler.NewConsoleHandler(enabledLevels(ParseLevel(level)))
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

// enabledLevels returns max and every level more severe than it.
func enabledLevels(max slog.Level) slog.Levels {
	var out slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= max {
			out = append(out, lv)
		}
	}
	return out
}

func InfoWithFields(msg string, fields Fields)  { logWithFields(slog.InfoLevel, msg, fields) }
func WarnWithFields(msg string, fields Fields)  { logWithFields(slog.WarnLevel, msg, fields) }
func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

// logWithFields attaches fields when Log is the gookit logger. Other loggers
// only get the message.
func logWithFields(level slog.Level, msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Log(level, msg)
		return
	}
	switch level {
	case slog.ErrorLevel:
		Log.Error(msg)
	case slog.WarnLevel:
		Log.Warn(msg)
	default:
		Log.Info(msg)
	}
}

// withServiceName sets service_name from SERVICE_NAME unless the caller did.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; ok {
		return fields
	}
	name := os.Getenv("SERVICE_NAME")
	if name == "" {
		name = defaultServiceName
	}
	fields["service_name"] = name
	return fields
}
