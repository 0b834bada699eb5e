package lexer

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/diag"
	"golox/internal/token"
)

// scanKinds tokenizes source and returns the kind sequence.
func scanKinds(t *testing.T, source string) []token.Kind {
	t.Helper()
	tokens, diags := New(source).Tokenize()
	require.Empty(t, diags, "unexpected diagnostics")
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenizeExpression(t *testing.T) {
	kinds := scanKinds(t, `1 + 2;`)
	expected := []token.Kind{
		token.NUMBER, token.SPACE, token.PLUS, token.SPACE,
		token.NUMBER, token.SEMICOLON, token.EOF,
	}
	assert.Equal(t, expected, kinds)
}

func TestTokenizeOperators(t *testing.T) {
	kinds := scanKinds(t, `! != = == > >= < <= ? : - + * /`)
	expected := []token.Kind{
		token.BANG, token.SPACE, token.NEQ, token.SPACE,
		token.ASSIGN, token.SPACE, token.EQ, token.SPACE,
		token.GT, token.SPACE, token.GTE, token.SPACE,
		token.LT, token.SPACE, token.LTE, token.SPACE,
		token.QUESTION, token.SPACE, token.COLON, token.SPACE,
		token.MINUS, token.SPACE, token.PLUS, token.SPACE,
		token.STAR, token.SPACE, token.SLASH,
		token.EOF,
	}
	assert.Equal(t, expected, kinds)
}

func TestTokenizeKeywords(t *testing.T) {
	source := `and class else false fun for if nil or print return super this true var while`
	tokens, diags := New(source).Tokenize()
	require.Empty(t, diags)

	expected := []token.Kind{
		token.KW_AND, token.KW_CLASS, token.KW_ELSE, token.KW_FALSE,
		token.KW_FUN, token.KW_FOR, token.KW_IF, token.KW_NIL,
		token.KW_OR, token.KW_PRINT, token.KW_RETURN, token.KW_SUPER,
		token.KW_THIS, token.KW_TRUE, token.KW_VAR, token.KW_WHILE,
	}
	var kinds []token.Kind
	for _, tok := range tokens {
		if tok.Kind.IsWhitespace() {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, append(expected, token.EOF), kinds)
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	// Keyword recognition is whole-word, not prefix.
	tokens, diags := New(`printer`).Tokenize()
	require.Empty(t, diags)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.IDENT, tokens[0].Kind)
	assert.Equal(t, "printer", tokens[0].Lexeme)
}

func TestTokenizeNumbers(t *testing.T) {
	tokens, diags := New(`123.45`).Tokenize()
	require.Empty(t, diags)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.NUMBER, tokens[0].Kind)
	assert.Equal(t, 123.45, tokens[0].Number)
}

func TestTrailingDotStaysSeparate(t *testing.T) {
	// "10." is a number followed by a dot, not a malformed float.
	tokens, diags := New(`10.`).Tokenize()
	require.Empty(t, diags)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.NUMBER, tokens[0].Kind)
	assert.Equal(t, 10.0, tokens[0].Number)
	assert.Equal(t, token.DOT, tokens[1].Kind)
	assert.Equal(t, token.EOF, tokens[2].Kind)
}

func TestTokenizeString(t *testing.T) {
	tokens, diags := New(`"hello world"`).Tokenize()
	require.Empty(t, diags)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Lexeme)
}

func TestMultilineString(t *testing.T) {
	tokens, diags := New("\"a\nb\"").Tokenize()
	require.Empty(t, diags)
	assert.Equal(t, "a\nb", tokens[0].Lexeme)
	// The closing quote sits on line 2.
	assert.Equal(t, 2, tokens[0].Span.End.Line)
}

func TestUnterminatedString(t *testing.T) {
	tokens, diags := New(`"abc`).Tokenize()
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Scanning, diags[0].Kind)
	assert.Contains(t, diags[0].Message, "Unterminated String")
	// No STRING token was produced; only the EOF sentinel remains.
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestTokenizeComment(t *testing.T) {
	tokens, diags := New("1 // rest; of line\n2").Tokenize()
	require.Empty(t, diags)
	expected := []token.Kind{
		token.NUMBER, token.SPACE, token.COMMENT, token.NEWLINE,
		token.NUMBER, token.EOF,
	}
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, expected, kinds)
	// The comment token keeps its raw text, slashes included.
	assert.Equal(t, "// rest; of line", tokens[2].Lexeme)
}

func TestWhitespaceKinds(t *testing.T) {
	kinds := scanKinds(t, " \t\r\n")
	expected := []token.Kind{
		token.SPACE, token.TAB, token.CARRIAGE_RETURN, token.NEWLINE, token.EOF,
	}
	assert.Equal(t, expected, kinds)
}

func TestUnexpectedCharacter(t *testing.T) {
	tokens, diags := New(`@`).Tokenize()
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Scanning, diags[0].Kind)
	assert.Equal(t, "@", diags[0].Subject)
	assert.Contains(t, diags[0].Message, "Unexpected character")
	// The bad symbol produces no token, and scanning continues after it.
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestScanContinuesPastError(t *testing.T) {
	tokens, diags := New(`1 @ 2`).Tokenize()
	require.Len(t, diags, 1)
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.NUMBER, token.SPACE, token.SPACE, token.NUMBER, token.EOF,
	}, kinds)
}

func TestEmptySourceYieldsEOF(t *testing.T) {
	tokens, diags := New("").Tokenize()
	require.Empty(t, diags)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestTokenPositions(t *testing.T) {
	tokens, diags := New("var x = 1").Tokenize()
	require.Empty(t, diags)

	// "var" starts at line 1, col 1.
	assert.Equal(t, 1, tokens[0].Span.Start.Line)
	assert.Equal(t, 1, tokens[0].Span.Start.Column)
	// "x" is the third token (var, space, x) at col 5.
	assert.Equal(t, token.IDENT, tokens[2].Kind)
	assert.Equal(t, 5, tokens[2].Span.Start.Column)
}

func TestPositionsAfterNewline(t *testing.T) {
	tokens, diags := New("1;\n2;").Tokenize()
	require.Empty(t, diags)
	// The second number sits at line 2, col 1.
	second := tokens[3]
	assert.Equal(t, token.NUMBER, second.Kind)
	assert.Equal(t, 2, second.Span.Start.Line)
	assert.Equal(t, 1, second.Span.Start.Column)
}

func TestLosslessSpans(t *testing.T) {
	// The scanner drops nothing: concatenating the source slices covered by
	// the token spans reproduces the input exactly.
	source := "var x = 1 + 2; // note\nprint x;\t\"s\"\n"
	tokens, diags := New(source).Tokenize()
	require.Empty(t, diags)

	var symbols []string
	gr := uniseg.NewGraphemes(source)
	for gr.Next() {
		symbols = append(symbols, gr.Str())
	}

	var rebuilt strings.Builder
	for _, tok := range tokens {
		rebuilt.WriteString(strings.Join(symbols[tok.Span.Start.Index:tok.Span.End.Index], ""))
	}
	assert.Equal(t, source, rebuilt.String())
}

func TestGraphemeColumns(t *testing.T) {
	// U+0061 U+0301 is "a" plus a combining acute accent: two code points,
	// one user-perceived character. Columns count grapheme clusters, so the
	// "=" lands in column 3, not 4.
	source := "a\u0301 = 1"
	tokens, diags := New(source).Tokenize()
	require.Empty(t, diags)

	assert.Equal(t, token.IDENT, tokens[0].Kind)
	assert.Equal(t, "a\u0301", tokens[0].Lexeme)
	assert.Equal(t, token.ASSIGN, tokens[2].Kind)
	assert.Equal(t, 3, tokens[2].Span.Start.Column)
}
