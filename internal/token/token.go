// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"
	"strconv"

	"golox/internal/span"
)

// Kind represents the type of a token. Comparing kinds compares the variant
// only, never the payload; that is how the parser matches "any identifier"
// or "any whitespace" without caring about the text.
type Kind int

const (
	// Single-character tokens
	LPAREN Kind = iota // (
	RPAREN             // )
	LBRACE             // {
	RBRACE             // }
	COMMA              // ,
	DOT                // .
	MINUS              // -
	PLUS               // +
	SEMICOLON          // ;
	SLASH              // /
	STAR               // *
	QUESTION           // ?
	COLON              // :

	// One or two character tokens
	BANG    // !
	NEQ     // !=
	ASSIGN  // =
	EQ      // ==
	GT      // >
	GTE     // >=
	LT      // <
	LTE     // <=

	// Literals
	IDENT  // identifiers: x, foo
	STRING // string literals: "hello"
	NUMBER // number literals: 1, 123.45

	// Meta tokens. Whitespace and comments are real tokens so the scanner
	// stays lossless; the parser strips whitespace itself.
	COMMENT
	SPACE
	TAB
	CARRIAGE_RETURN
	NEWLINE

	// Keywords
	KW_AND
	KW_CLASS
	KW_ELSE
	KW_FALSE
	KW_FUN
	KW_FOR
	KW_IF
	KW_NIL
	KW_OR
	KW_PRINT
	KW_RETURN
	KW_SUPER
	KW_THIS
	KW_TRUE
	KW_VAR
	KW_WHILE

	// Terminal sentinel. Every scan ends with exactly one EOF token; the
	// parser depends on it.
	EOF
)

var kindNames = map[Kind]string{
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	DOT:       ".",
	MINUS:     "-",
	PLUS:      "+",
	SEMICOLON: ";",
	SLASH:     "/",
	STAR:      "*",
	QUESTION:  "?",
	COLON:     ":",

	BANG:   "!",
	NEQ:    "!=",
	ASSIGN: "=",
	EQ:     "==",
	GT:     ">",
	GTE:    ">=",
	LT:     "<",
	LTE:    "<=",

	IDENT:  "IDENT",
	STRING: "STRING",
	NUMBER: "NUMBER",

	COMMENT:         "COMMENT",
	SPACE:           "SPACE",
	TAB:             "TAB",
	CARRIAGE_RETURN: "CARRIAGE_RETURN",
	NEWLINE:         "NEWLINE",

	KW_AND:    "and",
	KW_CLASS:  "class",
	KW_ELSE:   "else",
	KW_FALSE:  "false",
	KW_FUN:    "fun",
	KW_FOR:    "for",
	KW_IF:     "if",
	KW_NIL:    "nil",
	KW_OR:     "or",
	KW_PRINT:  "print",
	KW_RETURN: "return",
	KW_SUPER:  "super",
	KW_THIS:   "this",
	KW_TRUE:   "true",
	KW_VAR:    "var",
	KW_WHILE:  "while",

	EOF: "EOF",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword returns true if the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= KW_AND && k <= KW_WHILE
}

// IsWhitespace returns true for the whitespace meta kinds.
func (k Kind) IsWhitespace() bool {
	return k >= SPACE && k <= NEWLINE
}

var keywords = map[string]Kind{
	"and":    KW_AND,
	"class":  KW_CLASS,
	"else":   KW_ELSE,
	"false":  KW_FALSE,
	"fun":    KW_FUN,
	"for":    KW_FOR,
	"if":     KW_IF,
	"nil":    KW_NIL,
	"or":     KW_OR,
	"print":  KW_PRINT,
	"return": KW_RETURN,
	"super":  KW_SUPER,
	"this":   KW_THIS,
	"true":   KW_TRUE,
	"var":    KW_VAR,
	"while":  KW_WHILE,
}

// LookupIdent returns the keyword Kind for ident, or IDENT if it is not a
// keyword. Keyword recognition happens by exact match after the identifier
// has been scanned; this is what keeps "print" from lexing as a user name.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token represents a lexical token with its kind, payload, and source span.
// Lexeme carries the text payload for IDENT, STRING, and COMMENT tokens;
// Number carries the parsed value for NUMBER tokens. Tokens are immutable
// once produced.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme,omitempty"`
	Number float64   `json:"number,omitempty"`
	Span   span.Span `json:"span"`
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case IDENT, STRING, COMMENT:
		return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span.Start)
	case NUMBER:
		return fmt.Sprintf("%s %s %s", t.Kind, strconv.FormatFloat(t.Number, 'g', -1, 64), t.Span.Start)
	default:
		return fmt.Sprintf("%s %s", t.Kind, t.Span.Start)
	}
}
