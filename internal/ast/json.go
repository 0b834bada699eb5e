package ast

import (
	"golox/internal/span"
)

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	// ---- Expressions ----
	case *NumberLit:
		return m("NumberLit", n.Span, "value", n.Value)
	case *StringLit:
		return m("StringLit", n.Span, "value", n.Value)
	case *BoolLit:
		return m("BoolLit", n.Span, "value", n.Value)
	case *NilLit:
		return m("NilLit", n.Span)
	case *GroupingExpr:
		return m("GroupingExpr", n.Span, "expr", NodeToMap(n.Expr))
	case *UnaryExpr:
		return m("UnaryExpr", n.Span, "op", n.Op.Kind.String(), "right", NodeToMap(n.Right))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", n.Op.Kind.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *TernaryExpr:
		return m("TernaryExpr", n.Span,
			"cond", NodeToMap(n.Cond),
			"then", NodeToMap(n.Then),
			"else", NodeToMap(n.Else))
	case *VariableExpr:
		return m("VariableExpr", n.Span, "name", n.Name)

	// ---- Statements ----
	case *ExprStmt:
		return m("ExprStmt", n.Span, "expr", NodeToMap(n.Expr))
	case *PrintStmt:
		return m("PrintStmt", n.Span, "expr", NodeToMap(n.Expr))
	case *VarStmt:
		result := m("VarStmt", n.Span, "name", n.Name)
		if n.Init != nil {
			result["init"] = NodeToMap(n.Init)
		}
		return result

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// StmtsToMaps converts a statement list for JSON serialization.
func StmtsToMaps(stmts []Stmt) []interface{} {
	result := make([]interface{}, len(stmts))
	for i, s := range stmts {
		result[i] = NodeToMap(s)
	}
	return result
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"line":   s.Start.Line,
			"column": s.Start.Column,
			"index":  s.Start.Index,
		},
		"end": map[string]interface{}{
			"line":   s.End.Line,
			"column": s.End.Column,
			"index":  s.End.Index,
		},
	}
}
