package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golox/internal/span"
)

func spanAt(line, col int) span.Span {
	loc := span.Location{Line: line, Column: col}
	return span.Span{Start: loc, End: loc}
}

func TestScanningDisplayForm(t *testing.T) {
	err := Scanningf(spanAt(4, 3), "@", "Unexpected character")
	assert.Equal(t, "[line: 4, col: 3] Scanning Error (Unexpected character): @", err.String())
}

func TestParsingDisplayForm(t *testing.T) {
	err := Parsingf(spanAt(1, 9), "Expected '%s' after expression, instead found '%s'", ";", ")")
	assert.Equal(t,
		"[line: 1, col: 9] Parsing Error (Expected ';' after expression, instead found ')')",
		err.String())
}

func TestParsingAtEOFOmitsLocation(t *testing.T) {
	err := ParsingAtEOF("Reached end of file while expecting '%s'", ";")
	assert.Nil(t, err.Location)
	assert.Equal(t, "Parsing Error (Reached end of file while expecting ';')", err.String())
}

func TestRuntimeDisplayForm(t *testing.T) {
	err := Runtimef(spanAt(2, 1), "Undefined variable '%s'", "ghost")
	assert.Equal(t, "[line: 2, col: 1] Runtime Error (Undefined variable 'ghost')", err.String())
}

func TestErrorImplementsError(t *testing.T) {
	var err error = Scanningf(spanAt(1, 1), "", "Unterminated String")
	// Empty subject omits the trailing clause.
	assert.Equal(t, "[line: 1, col: 1] Scanning Error (Unterminated String)", err.Error())
}

func TestLogOrder(t *testing.T) {
	var log Log
	assert.Equal(t, 0, log.Len())

	first := ParsingAtEOF("first")
	second := ParsingAtEOF("second")
	log.Push(first)
	log.Push(second)

	assert.Equal(t, 2, log.Len())
	assert.Equal(t, []*Error{first, second}, log.Errors())
}
