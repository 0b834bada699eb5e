package ast

import (
	"fmt"
	"strconv"
)

// ExprString renders an expression as a parenthesized lisp-style string,
// operators first, for debugging and the parse command.
func ExprString(expr Expr) string {
	switch e := expr.(type) {
	case *NumberLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *StringLit:
		return e.Value
	case *BoolLit:
		return strconv.FormatBool(e.Value)
	case *NilLit:
		return "nil"
	case *GroupingExpr:
		return fmt.Sprintf("(group %s)", ExprString(e.Expr))
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Op.Kind, ExprString(e.Right))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op.Kind, ExprString(e.Left), ExprString(e.Right))
	case *TernaryExpr:
		return fmt.Sprintf("(%s ? %s : %s)", ExprString(e.Cond), ExprString(e.Then), ExprString(e.Else))
	case *VariableExpr:
		return e.Name
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

// StmtString renders a statement for debugging and the parse command.
func StmtString(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExprStmt:
		return fmt.Sprintf("Expression Statement: %s", ExprString(s.Expr))
	case *PrintStmt:
		return fmt.Sprintf("Print Statement: %s", ExprString(s.Expr))
	case *VarStmt:
		if s.Init != nil {
			return fmt.Sprintf("Variable Statement: %s = %s", s.Name, ExprString(s.Init))
		}
		return fmt.Sprintf("Variable Statement: %s", s.Name)
	default:
		return fmt.Sprintf("<unknown stmt %T>", stmt)
	}
}
