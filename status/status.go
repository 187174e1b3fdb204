// Package status defines the closed outcome taxonomy returned by the
// transcoding engine, modeled on the registered-error-ID pattern in
// Vanadium's verror package but closed over a fixed, small set of codes
// instead of an open, string-keyed registry.
package status

import "fmt"

// Code is one of the five outcomes a transform call can report.
type Code int

const (
	// OK indicates the transcode succeeded.
	OK Code = iota
	// InvalidArgs indicates topType is not a record, the direction is
	// unknown, or the source and destination regions alias.
	InvalidArgs
	// BadInput indicates the source bytes are inconsistent with the
	// descriptor: an unknown union ordinal, a truncated region, and
	// similar caller-data problems.
	BadInput
	// BufferTooSmall indicates the destination capacity was exceeded
	// during a write.
	BufferTooSmall
	// BadState indicates a descriptor references a type kind this
	// transform generation does not implement (tables, extensible
	// unions outside a union-transform rule) or carries an invalid tag
	// width.
	BadState
)

// zxValue mirrors the corresponding zx_status_t constants from the Zircon
// ABI this protocol's status codes are drawn from, so a caller embedding
// this library in a Zircon-adjacent host can recover the numeric contract.
var zxValue = map[Code]int32{
	OK:             0,
	InvalidArgs:    -10,
	BadState:       -20,
	BufferTooSmall: -789,
	BadInput:       -42,
}

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case InvalidArgs:
		return "INVALID_ARGS"
	case BadInput:
		return "BAD_INPUT"
	case BufferTooSmall:
		return "BUFFER_TOO_SMALL"
	case BadState:
		return "BAD_STATE"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// ZxValue returns the zx_status_t value this code corresponds to.
func (c Code) ZxValue() int32 {
	return zxValue[c]
}

// Error is the concrete error type returned by every fallible operation in
// the transcoding packages. It always carries a Code and a static
// diagnostic message; Cause is non-nil only when the error was built with
// Wrap around a failure from a lower layer.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New constructs an *Error with no wrapped cause.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error that wraps cause.
func Wrap(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is a *Error with the given code. It follows the
// same "Is" naming verror uses, adapted to Go's standard errors.Is protocol:
// Error implements no custom Is method, so errors.Is falls back to equality,
// which is why this helper exists for the common "what code is this" check.
func Is(err error, code Code) bool {
	var e *Error
	for err != nil {
		if se, ok := err.(*Error); ok {
			e = se
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return false
	}
	return e.Code == code
}
