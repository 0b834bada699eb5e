// Package diag provides the diagnostic (error) types shared by the scanner,
// parser, and interpreter.
package diag

import (
	"fmt"
	"strings"

	"golox/internal/span"
)

// Kind indicates which pipeline stage produced a diagnostic.
type Kind int

const (
	Scanning Kind = iota
	Parsing
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Scanning:
		return "Scanning"
	case Parsing:
		return "Parsing"
	case Runtime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Error represents a single user-facing diagnostic. Location is nil when the
// error cannot be tied to a source position.
type Error struct {
	Kind     Kind
	Subject  string // offending source text, may be empty
	Location *span.Span
	Message  string
}

// String renders the canonical display form:
//
//	[line: L, col: C] <Kind> Error (<message>): <subject>
//
// The location clause is omitted when no location is attached, and the
// subject clause when no subject is attached.
func (e *Error) String() string {
	var b strings.Builder
	if e.Location != nil {
		fmt.Fprintf(&b, "[line: %d, col: %d] ", e.Location.Start.Line, e.Location.Start.Column)
	}
	fmt.Fprintf(&b, "%s Error (%s)", e.Kind, e.Message)
	if e.Subject != "" {
		fmt.Fprintf(&b, ": %s", e.Subject)
	}
	return b.String()
}

func (e *Error) Error() string {
	return e.String()
}

// Scanningf creates a lexical error at the given span.
func Scanningf(s span.Span, subject, format string, args ...interface{}) *Error {
	return &Error{Kind: Scanning, Subject: subject, Location: &s, Message: fmt.Sprintf(format, args...)}
}

// Parsingf creates a syntax error at the given span.
func Parsingf(s span.Span, format string, args ...interface{}) *Error {
	return &Error{Kind: Parsing, Location: &s, Message: fmt.Sprintf(format, args...)}
}

// ParsingAtEOF creates a syntax error with no source location, for failures
// at end of input.
func ParsingAtEOF(format string, args ...interface{}) *Error {
	return &Error{Kind: Parsing, Message: fmt.Sprintf(format, args...)}
}

// Runtimef creates an evaluation error at the given span.
func Runtimef(s span.Span, format string, args ...interface{}) *Error {
	return &Error{Kind: Runtime, Location: &s, Message: fmt.Sprintf(format, args...)}
}

// Log is an append-only ordered collection of diagnostics. A stage owns its
// log while it runs and hands it to the caller when it returns.
type Log struct {
	errors []*Error
}

// Push appends an error to the log.
func (l *Log) Push(err *Error) {
	l.errors = append(l.errors, err)
}

// Len returns the number of logged errors.
func (l *Log) Len() int {
	return len(l.errors)
}

// Errors returns the logged errors in order of occurrence.
func (l *Log) Errors() []*Error {
	return l.errors
}
