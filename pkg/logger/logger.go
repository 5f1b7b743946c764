package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level re-exports zerolog's level type so callers never import zerolog
// directly just to pick a threshold.
type Level = zerolog.Level

const (
	DEBUG = zerolog.DebugLevel
	INFO  = zerolog.InfoLevel
	WARN  = zerolog.WarnLevel
	ERROR = zerolog.ErrorLevel
)

// ZeroLogger adapts a zerolog.Logger to a printf-style Debug/Info/Warn/Error
// interface, so callers don't need to learn zerolog's field-builder API.
type ZeroLogger struct {
	log zerolog.Logger
}

// Default creates a console-formatted logger writing to stdout.
func Default(component string, level Level) *ZeroLogger {
	return Output(component, level, os.Stdout)
}

// Output creates a logger writing to an arbitrary destination (e.g. a
// log file).
func Output(component string, level Level, w io.Writer) *ZeroLogger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
	return &ZeroLogger{log: zl}
}

func (l *ZeroLogger) Debug(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l *ZeroLogger) Info(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l *ZeroLogger) Warn(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l *ZeroLogger) Error(format string, args ...any) { l.log.Error().Msgf(format, args...) }

// SilentLogger discards everything; useful in tests.
type SilentLogger struct{}

func Silent() *SilentLogger { return &SilentLogger{} }

func (s SilentLogger) Debug(format string, args ...any) {}
func (s SilentLogger) Info(format string, args ...any)  {}
func (s SilentLogger) Warn(format string, args ...any)  {}
func (s SilentLogger) Error(format string, args ...any) {}
