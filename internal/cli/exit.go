// internal/cli/exit.go
package cli

import (
	"context"
	"errors"

	"alnedit/internal/writers"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitConversion = 1 // a codec call failed
	ExitUsage      = 2 // bad flags, arguments, config, or unreadable input
	ExitOutput     = 3 // writing results failed
	ExitCanceled   = 130
)

// ExitError attaches a process exit code to err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned from Execute to a process exit code.
// Errors without an ExitError (cobra's own flag and argument errors) are
// usage errors.
func ExitCode(err error) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}
