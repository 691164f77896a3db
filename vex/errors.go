package vex

import (
	"errors"
	"fmt"
)

// ParseError is a positioned parse failure. Start is the byte offset into
// the input at which the error begins; End is the exclusive byte offset at
// which it ends, or -1 when no end position is known. Err is the error
// kind and can be matched with errors.Is / errors.As.
type ParseError struct {
	Start int
	End   int
	Err   error
}

func (e *ParseError) Error() string {
	if e.End >= 0 {
		return fmt.Sprintf("error from char %d to %d: %v", e.Start, e.End, e.Err)
	}
	return fmt.Sprintf("error at char %d: %v", e.Start, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// errAt anchors err at a single point with no known end.
func errAt(err error, loc int) *ParseError {
	return &ParseError{Start: loc, End: -1, Err: err}
}

// errAtOne anchors err at a single character.
func errAtOne(err error, loc int) *ParseError {
	return &ParseError{Start: loc, End: loc + 1, Err: err}
}

// errBetween anchors err over the span [start, end).
func errBetween(err error, start, end int) *ParseError {
	return &ParseError{Start: start, End: end, Err: err}
}

// Parse error kinds.
var (
	// ErrExpectedValue is reported when no grammar rule matches at a
	// position where a value is required.
	ErrExpectedValue = errors.New("expected a value")

	// ErrInvalidIdentStart is reported when an identifier is required but
	// does not begin with an alphabetic character.
	ErrInvalidIdentStart = errors.New("the first character in an identifier should be alphabetic")

	// ErrInvalidFieldName is reported when a field name is neither a
	// string literal nor a valid identifier.
	ErrInvalidFieldName = errors.New("field name is not valid (it should be a string or begin with an alphabetical char followed by alphanumeric chars)")

	// ErrExpectedChar is reported when a char literal has no character
	// between its quotes.
	ErrExpectedChar = errors.New("expected a single character")

	// ErrExpectedEscapeCode is reported when a '\' inside a char or
	// string literal is not followed by a known escape code.
	ErrExpectedEscapeCode = errors.New(`expected an escape code to follow the '\'`)

	// ErrExpectedDigit is reported when a numeric sign is not followed by
	// any digits.
	ErrExpectedDigit = errors.New("expected one or more digits")

	// ErrInvalidBit identifies a character inside a bit sequence that is
	// neither 0 nor 1. The parser stops the bit run at the first such
	// character and reports the missing closing bracket instead, so this
	// kind completes the taxonomy but is never produced.
	ErrInvalidBit = errors.New("invalid character; expecting a 0 or 1")

	// ErrNestingTooDeep is reported when the input nests more deeply than
	// ParseOptions.MaxDepth allows.
	ErrNestingTooDeep = errors.New("value nesting is too deep")

	// ErrTrailingInput is reported by ParseComplete when characters
	// remain after the value.
	ErrTrailingInput = errors.New("unexpected characters after the value")
)

// SeparatorError reports a missing separator between a field name and its
// value.
type SeparatorError struct {
	Sep rune
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("missing field separator; expected %q", e.Sep)
}

// CloseError reports a missing closing delimiter; Open is the byte offset
// of the opening delimiter it should match.
type CloseError struct {
	Closer rune
	Open   int
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("missing closing %q to match the opening delimiter at position %d", e.Closer, e.Open)
}

// QuoteError reports an unterminated char or string literal; Open is the
// byte offset of the opening quote.
type QuoteError struct {
	Open int
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("expected a closing quote to match the opening quote at position %d", e.Open)
}

// NumberError reports a digit run that could not be converted into a
// 128-bit integer; Cause carries the underlying conversion diagnostic.
type NumberError struct {
	Cause error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("failed to parse digits into an integer: %v", e.Cause)
}

func (e *NumberError) Unwrap() error { return e.Cause }
