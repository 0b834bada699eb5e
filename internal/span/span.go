// Package span provides source position and span types shared by the
// scanner, parser, and diagnostics. Positions are measured in grapheme
// clusters, not bytes, so columns stay meaningful for multi-code-point
// user-perceived characters.
package span

import "fmt"

// Location represents a single point in source code.
type Location struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number, counted in graphemes
	Index  int `json:"index"`  // 0-based absolute grapheme index
}

// NewLocation returns the location of the first symbol in a source text.
func NewLocation() Location {
	return Location{Line: 1, Column: 1, Index: 0}
}

// Advance moves the location past one grapheme cluster. A newline grapheme
// starts a new line and resets the column; everything else advances the
// column. The absolute index always advances by one.
func (l *Location) Advance(grapheme string) {
	if grapheme == "\n" {
		l.Line++
		l.Column = 1
	} else {
		l.Column++
	}
	l.Index++
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span represents a range of source [Start, End): Start inclusive,
// End exclusive.
type Span struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// NewSpan returns a zero-width span at the beginning of a source text.
func NewSpan() Span {
	return Span{Start: NewLocation(), End: NewLocation()}
}

// Close collapses the span by moving Start up to End, beginning a fresh
// zero-width span for the next token.
func (s *Span) Close() {
	s.Start = s.End
}

// Len returns the number of graphemes covered by the span.
func (s Span) Len() int {
	return s.End.Index - s.Start.Index
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}
