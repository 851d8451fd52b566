package netrc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes a parse can produce, plus path
// resolution. Match with errors.Is; the full context (position, message)
// is available by unwrapping to *ParseError with errors.As.
var (
	// ErrUnterminatedQuote reports a quoted value with no closing quote.
	ErrUnterminatedQuote = errors.New("unterminated quoted value")

	// ErrInvalidEscape reports an escape sequence other than \" or \\
	// inside quotes, or a trailing backslash.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrMalformedEntry reports a token that does not fit the grammar:
	// a bare value with no preceding keyword, or a keyword missing its
	// value.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrDuplicateDefault reports a second default block in strict mode.
	ErrDuplicateDefault = errors.New("duplicate default entry")

	// ErrNoHomeDir reports that ~/.netrc could not be resolved because
	// the home directory is unavailable.
	ErrNoHomeDir = errors.New("home directory unavailable")
)

// ParseError is the error type returned for malformed netrc input. Err is
// one of the sentinel errors above.
type ParseError struct {
	Err     error
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %v: %s", e.Pos.Line, e.Pos.Column, e.Err, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
