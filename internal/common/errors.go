// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Journal errors.
	ErrJournalNotFound = errors.New("ledger journal not found")
)

// UpstreamError represents a failed invocation of the hledger binary:
// a non-zero exit, a timeout, or output that was not valid JSON.
// It is never retried; the tool's own diagnostics travel with it.
type UpstreamError struct {
	Err      error
	Stderr   string
	ExitCode int
}

func (e *UpstreamError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("hledger failed (exit %d): %s", e.ExitCode, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("hledger failed: %v", e.Err)
	}
	return fmt.Sprintf("hledger failed (exit %d)", e.ExitCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an error for a failed hledger invocation.
func NewUpstreamError(exitCode int, stderr string, err error) error {
	return &UpstreamError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// DecodeError represents JSON that parsed but did not match the expected
// report shape. It signals upstream shape drift, not a recoverable
// condition, and names the report and field that surprised us.
type DecodeError struct {
	Report string
	Field  string
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected %s report shape at %s: %s", e.Report, e.Field, e.Detail)
}

// NewDecodeError creates an error for an unexpected report shape.
func NewDecodeError(report, field, detail string) error {
	return &DecodeError{
		Report: report,
		Field:  field,
		Detail: detail,
	}
}

// IsUpstream reports whether err originated in the hledger process rather
// than in our decoding of its output.
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
