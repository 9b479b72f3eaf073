// Package logger is the zerolog front used by every themecast component.
// A nil *Logger is valid everywhere and discards what it is given, so
// packages can take an optional logger without guarding each call.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options holds the log section of the config once flags are applied.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

type Logger struct {
	base zerolog.Logger
}

// New builds a logger writing to opts.Writer, or stderr so that frames
// printed on stdout stay clean. An empty level means info.
func New(opts Options) (*Logger, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Component tags every entry with the owning component (theme, tui, ssh).
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("component", name).Logger()}
}

// WithFields returns a derived logger that always writes fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// at returns nil for a nil logger or a disabled level; zerolog events
// are no-ops on nil.
func (l *Logger) at(level zerolog.Level) *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.base.WithLevel(level)
}

func (l *Logger) Debug(msg string) { l.at(zerolog.DebugLevel).Msg(msg) }

func (l *Logger) Info(msg string) { l.at(zerolog.InfoLevel).Msg(msg) }

func (l *Logger) Warn(msg string) { l.at(zerolog.WarnLevel).Msg(msg) }

// Error logs msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	l.at(zerolog.ErrorLevel).Err(err).Msg(msg)
}
