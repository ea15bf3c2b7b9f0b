package app

import "errors"

const (
	exitOK      = 0
	exitFailure = 1
	// exitUsage covers bad flags, bad config values and rejected selections.
	exitUsage = 2
)

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

func asExitError(err error) (ExitError, bool) {
	var ee ExitError
	if errors.As(err, &ee) {
		return ee, true
	}
	return ExitError{}, false
}
