// Package ast defines the abstract syntax tree produced by the parser.
// Nodes are immutable after construction and each node exclusively owns its
// children: the tree has no sharing and no cycles.
package ast

import (
	"golox/internal/span"
	"golox/internal/token"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is the interface implemented by all AST nodes.
type Node interface {
	nodeNode()
	GetSpan() span.Span
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ============================================================
// Base types (embedded to provide common fields)
// ============================================================

// NodeBase provides the common Span field for all AST nodes.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) nodeNode()          {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// ExprBase is embedded by all expression nodes.
type ExprBase struct{ NodeBase }

func (ExprBase) exprNode() {}

// StmtBase is embedded by all statement nodes.
type StmtBase struct{ NodeBase }

func (StmtBase) stmtNode() {}

// ============================================================
// Expressions
// ============================================================

// NumberLit represents a number literal.
type NumberLit struct {
	ExprBase
	Value float64
}

// StringLit represents a string literal.
type StringLit struct {
	ExprBase
	Value string
}

// BoolLit represents true or false.
type BoolLit struct {
	ExprBase
	Value bool
}

// NilLit represents nil.
type NilLit struct {
	ExprBase
}

// GroupingExpr represents a parenthesized expression.
type GroupingExpr struct {
	ExprBase
	Expr Expr
}

// UnaryExpr represents a unary operation: !x, -x. The full operator token
// is kept so runtime errors can name the operator and its source position.
type UnaryExpr struct {
	ExprBase
	Op    token.Token
	Right Expr
}

// BinaryExpr represents a binary operation: a + b, x == y.
type BinaryExpr struct {
	ExprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

// TernaryExpr represents cond ? then : else. The operators are implicit;
// there is only one ternary form.
type TernaryExpr struct {
	ExprBase
	Cond Expr
	Then Expr
	Else Expr
}

// VariableExpr represents an identifier reference.
type VariableExpr struct {
	ExprBase
	Name string
}

// ============================================================
// Statements
// ============================================================

// ExprStmt wraps an expression evaluated for effect.
type ExprStmt struct {
	StmtBase
	Expr Expr
}

// PrintStmt represents: print expression ;
type PrintStmt struct {
	StmtBase
	Expr Expr
}

// VarStmt represents: var name [= init] ;
type VarStmt struct {
	StmtBase
	Name string
	Init Expr // may be nil if no initializer
}
