// Package errors defines the closed set of failure kinds surfaced by the
// mobile init sequence. Every failure is tagged with a stable ErrorCode so
// callers and tests can match on the kind without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure kind.
type ErrorCode string

const (
	// ErrUnknown is the catch-all for untagged failures.
	ErrUnknown ErrorCode = "UNKNOWN"

	// ErrConfigInvalid means the upstream app configuration is absent or malformed.
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// ErrAssetDirCreation means the configured asset directory could not be created.
	ErrAssetDirCreation ErrorCode = "ASSET_DIR_CREATION"

	// ErrLldbExtensionInstall means the editor's LLDB extension install command
	// ran but exited in error.
	ErrLldbExtensionInstall ErrorCode = "LLDB_EXTENSION_INSTALL"

	// ErrDotCargoLoad and ErrDotCargoWrite cover the build-target override file.
	ErrDotCargoLoad  ErrorCode = "DOT_CARGO_LOAD"
	ErrDotCargoWrite ErrorCode = "DOT_CARGO_WRITE"

	// ErrHostTripleDetection means the host build-target triple could not be determined.
	ErrHostTripleDetection ErrorCode = "HOST_TRIPLE_DETECTION"

	// ErrAndroidEnv is an Android environment failure not classified as a
	// fixable SDK/NDK absence. Fixable absences never surface as errors; they
	// are reported and the run continues.
	ErrAndroidEnv ErrorCode = "ANDROID_ENV"

	// ErrAndroidInit / ErrIosInit mean the delegated project generator failed.
	ErrAndroidInit ErrorCode = "ANDROID_INIT"
	ErrIosInit     ErrorCode = "IOS_INIT"

	// ErrOpenInEditor means the post-success editor open failed.
	ErrOpenInEditor ErrorCode = "OPEN_IN_EDITOR"
)

// InitError is a structured error with a stable code, a message, optional
// details (paths and the like) and an optional wrapped cause.
type InitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *InitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *InitError) Unwrap() error {
	return e.Wrapped
}

// Is matches two InitErrors by code, so tests can assert on kinds with
// errors.Is regardless of message or cause.
func (e *InitError) Is(target error) bool {
	var targetErr *InitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates an InitError with the given code and message.
func New(code ErrorCode, message string) *InitError {
	return &InitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates an InitError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *InitError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error, tagging it with a code. Returns nil for a nil
// cause so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *InitError {
	if err == nil {
		return nil
	}
	return &InitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InitError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail attaches a named detail to the error and returns it.
func (e *InitError) WithDetail(key string, value interface{}) *InitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// CodeOf extracts the ErrorCode from err, or ErrUnknown when err carries none.
func CodeOf(err error) ErrorCode {
	var ie *InitError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ErrUnknown
}
