package maze

import (
	"errors"
	"fmt"
)

// A machine-readable category for errors returned by this package.
type Code string

const (
	// Width or height was zero or negative, or too large to allocate.
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	// The generator reached a state that should be impossible. Indicates a
	// bug rather than bad input, and is never worth retrying.
	ErrCodeGenerationInvariant Code = "GENERATION_INVARIANT_VIOLATION"
	// The solver could not reach the end cell from the start cell.
	ErrCodePathNotFound Code = "PATH_NOT_FOUND"
	// Serialized maze or path data was malformed or inconsistent.
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"
	// Rendering or run configuration was out of range.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// The requested feature exists only as a reserved name.
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Sentinel values for use with errors.Is. Any *Error with the same Code
// matches.
var (
	ErrInvalidDimensions   = &Error{Code: ErrCodeInvalidDimensions}
	ErrGenerationInvariant = &Error{Code: ErrCodeGenerationInvariant}
	ErrPathNotFound        = &Error{Code: ErrCodePathNotFound}
	ErrInvalidEncoding     = &Error{Code: ErrCodeInvalidEncoding}
	ErrInvalidConfig       = &Error{Code: ErrCodeInvalidConfig}
	ErrUnsupported         = &Error{Code: ErrCodeUnsupported}
)

// A structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Makes errors.Is(err, ErrPathNotFound) and friends match on the code alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Creates a new Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Creates a new Error with the given code, wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Returns the Code of the first *Error in err's chain, or an empty string if
// there isn't one.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
