package models

import "fmt"

// GeneratorError represents an error that occurred while generating fragments
type GeneratorError struct {
	Type        ErrorType // type of error
	File        string    // file where error occurred
	Line        int       // line number where error occurred
	Message     string    // error message
	Suggestions []string  // hints shown by the CLI reporter
	Cause       error     // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// ParseError reports a geometry line that does not follow `name: value [// unit]`
type ParseError struct {
	Kind  ParseErrorKind
	File  string
	Line  int
	Text  string // offending line, trimmed
	Hint  string
	Cause error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	msg := e.message()
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %q", e.File, e.Line, msg, e.Text)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s: %q", e.Line, msg, e.Text)
	default:
		return fmt.Sprintf("%s: %q", msg, e.Text)
	}
}

// Unwrap returns the underlying error cause
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func (e *ParseError) message() string {
	switch e.Kind {
	case MissingSeparator:
		return "missing ':' separator"
	case MissingName:
		return "missing parameter name"
	case MissingValue:
		return "missing value"
	case InvalidEncoding:
		return "line is not valid UTF-8"
	default:
		return "malformed line"
	}
}

// Is makes errors.Is match any ParseError of the same kind
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks against parse failures
var (
	ErrMissingSeparator = &ParseError{Kind: MissingSeparator}
	ErrMissingName      = &ParseError{Kind: MissingName}
	ErrMissingValue     = &ParseError{Kind: MissingValue}
	ErrInvalidEncoding  = &ParseError{Kind: InvalidEncoding}
)
