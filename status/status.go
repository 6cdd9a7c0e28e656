package status

import (
	"errors"
	"fmt"
	"strings"
)

// Op names the operation that produced an error
type Op string

const (
	OpParse     Op = "parse"     // table blob parsing
	OpConvert   Op = "convert"   // code page / UTF conversion
	OpNormalize Op = "normalize" // Unicode normalization
	OpIdn       Op = "idn"       // IDN encode/decode
	OpLocale    Op = "locale"    // locale registry lookup
	OpLoad      Op = "load"      // table section loading
	OpCompare   Op = "compare"   // string comparison/hashing
)

// Code categorizes the error
type Code string

const (
	CodeInvalidParameter Code = "invalid_parameter"
	CodeBufferTooSmall   Code = "buffer_too_small"
	CodeNoTranslation    Code = "no_unicode_translation"
	CodeSomeNotMapped    Code = "some_not_mapped"
	CodeNoMemory         Code = "no_memory"
	CodeInvalidIdn       Code = "invalid_idn_normalization"
	CodeNotFound         Code = "not_found"
	CodeUnsupported      Code = "unsupported"
	CodeInvalidTable     Code = "invalid_table"
)

// Error is the structured error type used throughout the engine
type Error struct {
	Cause  error
	Op     Op
	Code   Code
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Code))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two *Errors match when
// their codes match; the Op is informational only.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with a formatted detail message
func New(op Op, code Code, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Op: op, Code: code, Detail: detail}
}

// Wrap creates an error with an underlying cause
func Wrap(op Op, code Code, cause error) *Error {
	return &Error{Op: op, Code: code, Cause: cause}
}

// Convenience constructors for the common codes

// InvalidParameter reports a malformed argument
func InvalidParameter(op Op, detail string, args ...any) *Error {
	return New(op, CodeInvalidParameter, detail, args...)
}

// BufferTooSmall reports a destination too small for the result; required
// is the size (in the operation's units) the caller should regrow to
func BufferTooSmall(op Op, required int) *Error {
	return New(op, CodeBufferTooSmall, "need %d", required)
}

// NoTranslation reports malformed UTF-16 input (lone or invalid surrogate)
func NoTranslation(op Op) *Error {
	return &Error{Op: op, Code: CodeNoTranslation}
}

// SomeNotMapped reports that a replacement character was substituted.
// The operation's output is complete and usable.
func SomeNotMapped(op Op) *Error {
	return &Error{Op: op, Code: CodeSomeNotMapped}
}

// InvalidIdn reports an IDN structural violation
func InvalidIdn(op Op, detail string, args ...any) *Error {
	return New(op, CodeInvalidIdn, detail, args...)
}

// NotFound reports a missing entry or table section
func NotFound(op Op, detail string, args ...any) *Error {
	return New(op, CodeNotFound, detail, args...)
}

// Unsupported reports a fixed policy rejection
func Unsupported(op Op, detail string, args ...any) *Error {
	return New(op, CodeUnsupported, detail, args...)
}

// InvalidTable reports a corrupt or mismatched table blob
func InvalidTable(op Op, detail string, args ...any) *Error {
	return New(op, CodeInvalidTable, detail, args...)
}

// code extracts the Code from any error, empty if not a *Error
func code(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsBufferTooSmall reports whether err is the recoverable regrow-and-retry
// condition
func IsBufferTooSmall(err error) bool { return code(err) == CodeBufferTooSmall }

// IsSomeNotMapped reports whether err is the advisory substitution status
func IsSomeNotMapped(err error) bool { return code(err) == CodeSomeNotMapped }

// IsInvalidParameter reports whether err is a malformed-argument failure
func IsInvalidParameter(err error) bool { return code(err) == CodeInvalidParameter }

// IsNoTranslation reports whether err is a malformed UTF-16 failure
func IsNoTranslation(err error) bool { return code(err) == CodeNoTranslation }

// IsInvalidIdn reports whether err is an IDN structural violation
func IsInvalidIdn(err error) bool { return code(err) == CodeInvalidIdn }

// IsNotFound reports whether err is a missing entry or section
func IsNotFound(err error) bool { return code(err) == CodeNotFound }

// IsUnsupported reports whether err is a fixed-policy unsupported operation
func IsUnsupported(err error) bool { return code(err) == CodeUnsupported }

// Fatal reports whether err terminates the call without recourse: anything
// except nil, BufferTooSmall and SomeNotMapped
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	c := code(err)
	return c != CodeBufferTooSmall && c != CodeSomeNotMapped
}
