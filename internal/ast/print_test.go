package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golox/internal/ast"
	"golox/internal/lexer"
	"golox/internal/parser"
)

func parseStmts(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	tokens, scanDiags := lexer.New(source).Tokenize()
	require.Empty(t, scanDiags)
	stmts, parseDiags := parser.New(tokens).Parse()
	require.Empty(t, parseDiags)
	return stmts
}

func exprOf(t *testing.T, source string) ast.Expr {
	t.Helper()
	stmts := parseStmts(t, source)
	require.Len(t, stmts, 1)
	return stmts[0].(*ast.ExprStmt).Expr
}

func TestExprString(t *testing.T) {
	cases := []struct {
		source   string
		expected string
	}{
		{`1;`, "1"},
		{`123.45;`, "123.45"},
		{`"hi";`, "hi"},
		{`true;`, "true"},
		{`nil;`, "nil"},
		{`x;`, "x"},
		{`(1);`, "(group 1)"},
		{`-5;`, "(- 5)"},
		{`!true;`, "(! true)"},
		{`1 + 2 * 3;`, "(+ 1 (* 2 3))"},
		{`(1 + 2) * 3;`, "(* (group (+ 1 2)) 3)"},
		{`true ? 1 : 2;`, "(true ? 1 : 2)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ast.ExprString(exprOf(t, tc.source)), "source: %s", tc.source)
	}
}

func TestStmtString(t *testing.T) {
	stmts := parseStmts(t, `1 + 2; print x; var a = 1; var b;`)
	require.Len(t, stmts, 4)

	assert.Equal(t, "Expression Statement: (+ 1 2)", ast.StmtString(stmts[0]))
	assert.Equal(t, "Print Statement: x", ast.StmtString(stmts[1]))
	assert.Equal(t, "Variable Statement: a = 1", ast.StmtString(stmts[2]))
	assert.Equal(t, "Variable Statement: b", ast.StmtString(stmts[3]))
}

func TestStmtsToMaps(t *testing.T) {
	stmts := parseStmts(t, `print 1 + 2;`)
	maps := ast.StmtsToMaps(stmts)
	require.Len(t, maps, 1)

	stmt, ok := maps[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "PrintStmt", stmt["kind"])
	require.Contains(t, stmt, "span")

	expr, ok := stmt["expr"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BinaryExpr", expr["kind"])
}
