// Package logger gives the CLI a small, domain-shaped logging surface over
// zerolog: entries carry theme, exporter and output-path context as typed
// fields. Core packages never log; failures propagate to the caller as
// structured errors and the CLI narrates them here, at the edge.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger at creation time. An empty Level means info;
// a nil Writer means stderr.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a thin veneer over zerolog. The zero of *Logger is usable: all
// methods are nil-safe no-ops.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from Options.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	base := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// WithTheme stamps every subsequent entry with the theme name.
func (l *Logger) WithTheme(name string) *Logger {
	return l.withStr("theme", name)
}

// WithExporter stamps every subsequent entry with the exporter name.
func (l *Logger) WithExporter(name string) *Logger {
	return l.withStr("exporter", name)
}

// WithPath stamps every subsequent entry with an output path.
func (l *Logger) WithPath(path string) *Logger {
	return l.withStr("path", path)
}

func (l *Logger) withStr(key, value string) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Str(key, value).Logger()}
	return &derived
}

// Info writes an informational entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug entry if the level admits it.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Error writes an error entry with the failure attached.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
