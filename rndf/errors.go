package rndf

import "fmt"

// ParseError is the base error type for all rndf parse errors. Line is the
// 1-based physical line number where the error was detected and Text the
// offending line as read from the file, after comment stripping.
type ParseError struct {
	Message string
	Line    int
	Text    string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (%q)", e.Line, e.Message, e.Text)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SyntaxError represents a grammar-level mismatch: wrong keyword, wrong
// token count, a non-numeric token where a number was required, or a value
// outside its permitted range.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: expected %s, got %s (%q)", e.Line, e.Expected, e.Got, e.Text)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// SequenceError reports an entity whose declared identifier does not equal
// its expected 1-based position within the parent block.
type SequenceError struct {
	ParseError
	Expected int
	Got      int
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("line %d: non-consecutive identifier %d, expected %d (%q)",
		e.Line, e.Got, e.Expected, e.Text)
}

// DuplicateOptionError reports a once-only header directive that appears a
// second time within the same block header.
type DuplicateOptionError struct {
	ParseError
	Option string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("line %d: duplicate %s directive (%q)", e.Line, e.Option, e.Text)
}

// TerminatorError reports a missing end_* line; Got holds whatever line was
// found in its place.
type TerminatorError struct {
	ParseError
	Expected string
	Got      string
}

func (e *TerminatorError) Error() string {
	return fmt.Sprintf("line %d: expected terminator %q, got %q", e.Line, e.Expected, e.Got)
}

// EOFError reports that the input ended while a mandatory field, body
// element, or terminator was still expected.
type EOFError struct {
	ParseError
}
