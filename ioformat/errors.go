package ioformat

import "errors"

// ErrUnknownDroneClass is wrapped into a ConfigError whenever the input
// stream names a drone_class this module does not recognize.
var ErrUnknownDroneClass = errors.New("ioformat: unknown drone class")

// ErrTruncatedStream is wrapped into a ConfigError when the input ends
// before every required field has been read.
var ErrTruncatedStream = errors.New("ioformat: input stream ended early")

// ConfigError is the user-visible error for malformed input: it names the
// field being parsed when the underlying error occurred, so a CLI caller
// can report something more actionable than "unexpected EOF".
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "ioformat: parsing " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
