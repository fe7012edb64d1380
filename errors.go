package macaddrs

import (
	"errors"
	"fmt"
)

// Sentinel errors, inspected with [errors.Is].
var (
	// ErrEmptyDelimiter is wrapped by [PatternError] when no delimiter was given.
	ErrEmptyDelimiter = errors.New("delimiter is empty")

	// ErrEmptyMatch is wrapped by [ExtractError] when the address matcher
	// reports a match without any text.
	ErrEmptyMatch = errors.New("address match has no content")

	// ErrNoSources is returned by [Provider.Addrs] when no command source is
	// configured.
	ErrNoSources = errors.New("no command sources configured")

	// ErrSystemRootUnset is returned on Windows when the SystemRoot
	// environment variable needed to locate getmac.exe is not set.
	ErrSystemRootUnset = errors.New("SystemRoot environment variable not set")

	// ErrAllCommandsFailed is returned when none of the configured commands
	// could be started.
	ErrAllCommandsFailed = errors.New("all commands failed")
)

// PatternError records a delimiter that could not be turned into an
// address pattern.
type PatternError struct {
	Delimiter string // delimiter as given by the caller
	Err       error  // ErrEmptyDelimiter or the regexp compile error
}

// Error returns a human-readable description of the pattern failure.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid delimiter %q: %v", e.Delimiter, e.Err)
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// ExtractError records a failed extraction. It wraps a [*PatternError] or
// [ErrEmptyMatch].
type ExtractError struct {
	Err error
}

// Error returns a human-readable description of the extraction failure.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract MAC addresses: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "/sbin/ifconfig", "getmac.exe"
	Stderr  string // trimmed standard error output, if the command ran
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed: %v: %s", e.Command, e.Err, e.Stderr)
	}

	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
