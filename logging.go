package qoi

import "github.com/ausocean/utils/logging"

// noopLogger discards every call. It's the logger Encode/Decode use when
// the caller doesn't supply one, keeping the codec usable as a pure
// function call with zero ceremony.
type noopLogger struct{}

func (noopLogger) Log(int8, string, ...interface{}) {}
func (noopLogger) SetLevel(int8)                    {}
func (noopLogger) Debug(string, ...interface{})     {}
func (noopLogger) Info(string, ...interface{})      {}
func (noopLogger) Warning(string, ...interface{})   {}
func (noopLogger) Error(string, ...interface{})     {}
func (noopLogger) Fatal(string, ...interface{})     {}

var defaultLogger logging.Logger = noopLogger{}

// Options carries optional, strictly observational ambient behavior into
// Encode and Decode. A zero-value Options is always valid.
type Options struct {
	// Logger receives debug lines about chunk mix and a warning when Decode
	// pads a truncated stream. Nil uses a no-op logger. Logging never affects codec
	// output.
	Logger logging.Logger
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return defaultLogger
	}
	return o.Logger
}
