package yes

import "fmt"

// ErrorCode identifies the structural failure reported for a logical line
// or for the parse call as a whole.
type ErrorCode uint8

const (
	ErrNone ErrorCode = iota

	// ErrConfiguration is fatal before any line parses: the literal table
	// itself is invalid (duplicate begin bytes or reserved delimiters).
	ErrConfiguration

	// ErrUnterminatedContinuation means input ended while a trailing
	// backslash was still waiting for the next physical line.
	ErrUnterminatedContinuation

	// ErrUnterminatedSpan means a literal span opened but never closed
	// within its logical line.
	ErrUnterminatedSpan

	// ErrNestedSpan means a span tried to open while one was already open.
	ErrNestedSpan

	// ErrInvalidKey means a named-argument key was empty or contained
	// free whitespace.
	ErrInvalidKey

	// ErrMalformedAttribute means an attribute's bracket syntax was
	// unbalanced or the tag was empty.
	ErrMalformedAttribute

	// ErrMissingElement means the line had attribute or prefix glyphs but
	// no element name followed them.
	ErrMissingElement

	// ErrRuntime is reserved for caller-defined failures layered on top
	// of the format.
	ErrRuntime
)

// Message returns the canonical diagnostic text for the code.
func (c ErrorCode) Message() string {
	switch c {
	case ErrConfiguration:
		return "invalid literal table"
	case ErrUnterminatedContinuation:
		return "unterminated continuation at end of input"
	case ErrUnterminatedSpan:
		return "missing end delimiter in literal span"
	case ErrNestedSpan:
		return "nested literal span unsupported"
	case ErrInvalidKey:
		return "invalid key in named argument"
	case ErrMalformedAttribute:
		return "unbalanced attribute brackets"
	case ErrMissingElement:
		return "missing element name"
	case ErrRuntime:
		return "unexpected runtime error"
	default:
		return "ok"
	}
}

// ParseError carries a structural diagnostic tagged with the first
// physical line number of the logical line it originated from.
type ParseError struct {
	Line    int
	Code    ErrorCode
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("yes:%d: %s", e.Line, e.Message)
}

func newError(line int, code ErrorCode) *ParseError {
	return &ParseError{Line: line, Code: code, Message: code.Message()}
}

// CustomError builds a ParseError with ErrRuntime and a caller-supplied
// message, for schemas that report their own validation failures in the
// same shape as structural ones.
func CustomError(line int, message string) *ParseError {
	return &ParseError{Line: line, Code: ErrRuntime, Message: message}
}
