package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"golox/internal/diag"
	"golox/internal/span"
	"golox/internal/token"
)

var errColor = color.New(color.FgRed)

// printDiags writes one diagnostic per line, red when colored.
func printDiags(w io.Writer, diags []*diag.Error, colored bool) {
	for _, d := range diags {
		if colored {
			errColor.Fprintln(w, d.String())
		} else {
			fmt.Fprintln(w, d.String())
		}
	}
}

// printTokens writes the token stream one token per line.
func printTokens(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		fmt.Fprintln(w, t.String())
	}
}

func tokensToMaps(tokens []token.Token) []interface{} {
	out := make([]interface{}, 0, len(tokens))
	for _, t := range tokens {
		m := map[string]interface{}{
			"kind":   t.Kind.String(),
			"lexeme": t.Lexeme,
			"span": map[string]interface{}{
				"start": locToMap(t.Span.Start),
				"end":   locToMap(t.Span.End),
			},
		}
		if t.Kind == token.NUMBER {
			m["number"] = t.Number
		}
		out = append(out, m)
	}
	return out
}

func locToMap(l span.Location) map[string]interface{} {
	return map[string]interface{}{
		"line":   l.Line,
		"column": l.Column,
		"index":  l.Index,
	}
}

// writeJSON pretty-prints v to w.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
