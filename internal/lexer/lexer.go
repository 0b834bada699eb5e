// Package lexer implements lexical analysis. The scanner consumes the
// source one grapheme cluster at a time and produces a lossless token
// stream: whitespace and comments come out as tagged tokens rather than
// being dropped, and every lexical error is collected without halting the
// scan.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"golox/internal/diag"
	"golox/internal/span"
	"golox/internal/token"
)

// Scanner tokenizes source code into a sequence of tokens.
type Scanner struct {
	symbols []string // source pre-split into grapheme clusters
	pos     int      // current read position in symbols

	// cursor covers the symbols consumed for the token being scanned. It is
	// snapshotted into each emitted token and closed before the next one.
	cursor span.Span

	log diag.Log
}

// New creates a Scanner for the given source text.
func New(source string) *Scanner {
	return &Scanner{
		symbols: splitGraphemes(source),
		cursor:  span.NewSpan(),
	}
}

// Tokenize scans the entire source and returns all tokens and the lexical
// errors encountered. The token slice always ends with an EOF token, even
// for empty or malformed input; callers that need a clean run must also
// check the error slice.
func (s *Scanner) Tokenize() ([]token.Token, []*diag.Error) {
	var tokens []token.Token
	for {
		lead, ok := s.advance()
		if !ok {
			break
		}
		if tok, emitted := s.scanToken(lead); emitted {
			tokens = append(tokens, tok)
		}
		s.cursor.Close()
	}
	tokens = append(tokens, token.Token{Kind: token.EOF, Span: s.cursor})
	return tokens, s.log.Errors()
}

// ---- symbol navigation ----

// peek returns the next grapheme without consuming it.
func (s *Scanner) peek() (string, bool) {
	if s.pos >= len(s.symbols) {
		return "", false
	}
	return s.symbols[s.pos], true
}

// peekNext returns the grapheme after next.
func (s *Scanner) peekNext() (string, bool) {
	if s.pos+1 >= len(s.symbols) {
		return "", false
	}
	return s.symbols[s.pos+1], true
}

// advance consumes the next grapheme, moving the cursor's end past it.
func (s *Scanner) advance() (string, bool) {
	if s.pos >= len(s.symbols) {
		return "", false
	}
	sym := s.symbols[s.pos]
	s.pos++
	s.cursor.End.Advance(sym)
	return sym, true
}

// match consumes the next grapheme only if it equals expected.
func (s *Scanner) match(expected string) bool {
	if sym, ok := s.peek(); ok && sym == expected {
		s.advance()
		return true
	}
	return false
}

// ---- token scanning ----

// scanToken dispatches on the lead symbol and resolves one token. It
// returns false when the symbols consumed produced a diagnostic instead of
// a token.
func (s *Scanner) scanToken(lead string) (token.Token, bool) {
	switch lead {
	case "(":
		return s.emit(token.LPAREN), true
	case ")":
		return s.emit(token.RPAREN), true
	case "{":
		return s.emit(token.LBRACE), true
	case "}":
		return s.emit(token.RBRACE), true
	case ",":
		return s.emit(token.COMMA), true
	case ".":
		return s.emit(token.DOT), true
	case "-":
		return s.emit(token.MINUS), true
	case "+":
		return s.emit(token.PLUS), true
	case ";":
		return s.emit(token.SEMICOLON), true
	case "*":
		return s.emit(token.STAR), true
	case "?":
		return s.emit(token.QUESTION), true
	case ":":
		return s.emit(token.COLON), true
	case "!":
		if s.match("=") {
			return s.emit(token.NEQ), true
		}
		return s.emit(token.BANG), true
	case "=":
		if s.match("=") {
			return s.emit(token.EQ), true
		}
		return s.emit(token.ASSIGN), true
	case "<":
		if s.match("=") {
			return s.emit(token.LTE), true
		}
		return s.emit(token.LT), true
	case ">":
		if s.match("=") {
			return s.emit(token.GTE), true
		}
		return s.emit(token.GT), true
	case "/":
		if s.match("/") {
			return s.scanComment(), true
		}
		return s.emit(token.SLASH), true
	case " ":
		return s.emit(token.SPACE), true
	case "\t":
		return s.emit(token.TAB), true
	case "\r":
		return s.emit(token.CARRIAGE_RETURN), true
	case "\n":
		return s.emit(token.NEWLINE), true
	case "\"":
		return s.scanString()
	default:
		if isDigit(lead) {
			return s.scanNumber(lead), true
		}
		if isIdentStart(lead) {
			return s.scanIdentifier(lead), true
		}
		s.log.Push(diag.Scanningf(s.cursor, lead, "Unexpected character"))
		return token.Token{}, false
	}
}

// emit snapshots the cursor into a payload-free token.
func (s *Scanner) emit(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Span: s.cursor}
}

// scanComment consumes a // line comment through (but not including) the
// next newline. The token carries the raw comment text, slashes included.
func (s *Scanner) scanComment() token.Token {
	var text strings.Builder
	text.WriteString("//")
	for {
		sym, ok := s.peek()
		if !ok || sym == "\n" {
			break
		}
		s.advance()
		text.WriteString(sym)
	}
	return token.Token{Kind: token.COMMENT, Lexeme: text.String(), Span: s.cursor}
}

// scanString consumes a double-quoted string literal. The token's text is
// the content between the delimiters. Reaching end of input before the
// closing quote is a scanning error and yields no token; the scan loop
// terminates naturally since no symbols remain.
func (s *Scanner) scanString() (token.Token, bool) {
	var text strings.Builder
	for {
		sym, ok := s.advance()
		if !ok {
			s.log.Push(diag.Scanningf(s.cursor, "", "Unterminated String"))
			return token.Token{}, false
		}
		if sym == "\"" {
			return token.Token{Kind: token.STRING, Lexeme: text.String(), Span: s.cursor}, true
		}
		text.WriteString(sym)
	}
}

// scanNumber consumes a number literal: digits, optionally followed by a
// decimal point and more digits. A trailing '.' with no digit after it is
// left for the next token, so "10." lexes as NUMBER(10) DOT.
func (s *Scanner) scanNumber(lead string) token.Token {
	var text strings.Builder
	text.WriteString(lead)
	for {
		sym, ok := s.peek()
		if !ok || !isDigit(sym) {
			break
		}
		s.advance()
		text.WriteString(sym)
	}
	if dot, ok := s.peek(); ok && dot == "." {
		if next, ok := s.peekNext(); ok && isDigit(next) {
			s.advance()
			text.WriteString(".")
			for {
				sym, ok := s.peek()
				if !ok || !isDigit(sym) {
					break
				}
				s.advance()
				text.WriteString(sym)
			}
		}
	}
	value, err := strconv.ParseFloat(text.String(), 64)
	if err != nil {
		// The digit/decimal grammar above guarantees a valid float; failing
		// here is a broken scanner invariant, not user input.
		panic(fmt.Sprintf("lexer: scanned number %q does not parse: %v", text.String(), err))
	}
	return token.Token{Kind: token.NUMBER, Number: value, Span: s.cursor}
}

// scanIdentifier consumes an identifier or keyword.
func (s *Scanner) scanIdentifier(lead string) token.Token {
	var text strings.Builder
	text.WriteString(lead)
	for {
		sym, ok := s.peek()
		if !ok || !isIdentPart(sym) {
			break
		}
		s.advance()
		text.WriteString(sym)
	}
	name := text.String()
	kind := token.LookupIdent(name)
	tok := token.Token{Kind: kind, Span: s.cursor}
	if kind == token.IDENT {
		tok.Lexeme = name
	}
	return tok
}

// ---- symbol classification ----

func splitGraphemes(source string) []string {
	var symbols []string
	gr := uniseg.NewGraphemes(source)
	for gr.Next() {
		symbols = append(symbols, gr.Str())
	}
	return symbols
}

func isDigit(sym string) bool {
	return len(sym) == 1 && sym[0] >= '0' && sym[0] <= '9'
}

// isIdentStart reports whether the grapheme can begin an identifier. A
// cluster counts as alphabetic when its base code point is a letter, so
// composed characters with combining marks are accepted whole.
func isIdentStart(sym string) bool {
	if sym == "_" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(sym)
	return unicode.IsLetter(r)
}

func isIdentPart(sym string) bool {
	return isIdentStart(sym) || isDigit(sym)
}
