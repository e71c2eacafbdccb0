package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the distinct parse failure kinds. Every failure
// returned by this package wraps exactly one of them, so callers can
// dispatch with errors.Is.
var (
	// ErrFieldSyntax is returned when a header content line has no '.'
	// separator and therefore cannot be split into mnemonic and unit.
	ErrFieldSyntax = errors.New("malformed header field")

	// ErrMissingSection is returned at assembly time when the file declares
	// no curves: a ~C section that is absent or empty.
	ErrMissingSection = errors.New("curve section missing or empty")

	// ErrNumericParse is returned when a data token is not a valid
	// floating-point number.
	ErrNumericParse = errors.New("invalid numeric value")

	// ErrColumnCount is returned when a data row's token count does not
	// match the declared curve count, in either wrap or non-wrap mode.
	ErrColumnCount = errors.New("column count mismatch")
)

// ParseError reports a parse failure at a specific line. It wraps one of the
// package sentinel errors and carries the raw text for diagnosis.
type ParseError struct {
	Line int    // 1-based line number in the input
	Text string // the offending raw line or token
	Err  error  // the underlying sentinel, possibly annotated
}

// Error formats the failure with its location.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying error, letting errors.Is reach the sentinel.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseErrorf builds a ParseError wrapping sentinel with a formatted detail
// message.
func parseErrorf(line int, text string, sentinel error, format string, args ...any) *ParseError {
	detail := fmt.Sprintf(format, args...)
	if detail == "" {
		return &ParseError{Line: line, Text: text, Err: sentinel}
	}
	return &ParseError{Line: line, Text: text, Err: fmt.Errorf("%w: %s", sentinel, detail)}
}
