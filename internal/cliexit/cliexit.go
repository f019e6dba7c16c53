// Package cliexit translates the interpreter's internal outcomes into the
// process exit codes spec.md §6 mandates: 0 normal, 64 misuse, 65
// compile-time error, 70 runtime error. Cobra's own error handling has no
// notion of these specific codes, so the root command returns a
// *CodedError that cmd.Execute unwraps into the status main.go exits with,
// instead of letting Cobra choose a generic non-zero status.
package cliexit

import "fmt"

const (
	// Usage is returned for CLI misuse (more than one script argument) and
	// when the script file cannot be read.
	Usage = 64
	// CompileError is returned after a file run that failed to scan, parse,
	// or resolve.
	CompileError = 65
	// RuntimeErrorCode is returned after a file run that failed during
	// evaluation.
	RuntimeErrorCode = 70
)

// CodedError pairs an error with the process exit code it should produce.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *CodedError) Unwrap() error { return e.Err }

// New wraps err (which may be nil) with the given exit code.
func New(code int, err error) *CodedError {
	return &CodedError{Code: code, Err: err}
}

// CodeOf extracts the intended exit code from err: 0 for a nil error, the
// code carried by a *CodedError, or 1 for any other error (an unexpected
// failure the CLI layer didn't anticipate).
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	if coded, ok := err.(*CodedError); ok {
		return coded.Code
	}
	return 1
}
