package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/lexer"
	"golox/internal/parser"
)

// goldenTest runs a .lox file and compares its output to a .expected file.
func goldenTest(t *testing.T, name string) {
	t.Helper()

	loxPath := filepath.Join("..", "..", "testdata", name+".lox")
	expectedPath := filepath.Join("..", "..", "testdata", name+".expected")

	source, err := os.ReadFile(loxPath)
	require.NoError(t, err)
	expected, err := os.ReadFile(expectedPath)
	require.NoError(t, err)

	tokens, scanDiags := lexer.New(string(source)).Tokenize()
	require.Empty(t, scanDiags, "lex errors in %s", loxPath)
	stmts, parseDiags := parser.New(tokens).Parse()
	require.Empty(t, parseDiags, "parse errors in %s", loxPath)

	var buf bytes.Buffer
	rerr := New(&buf).Run(stmts)
	require.Nil(t, rerr, "runtime error in %s: %v", loxPath, rerr)

	assert.Equal(t,
		strings.TrimRight(string(expected), "\n"),
		strings.TrimRight(buf.String(), "\n"),
		"output mismatch for %s", name)
}

func TestGoldenArithmetic(t *testing.T) {
	goldenTest(t, "golden_arithmetic")
}

func TestGoldenVariables(t *testing.T) {
	goldenTest(t, "golden_variables")
}

func TestGoldenTernary(t *testing.T) {
	goldenTest(t, "golden_ternary")
}

func TestGoldenEquality(t *testing.T) {
	goldenTest(t, "golden_equality")
}
