package runtime

import (
	"fmt"
	"io"

	"golox/internal/ast"
	"golox/internal/diag"
	"golox/internal/token"
)

// Interpreter walks a statement list and executes it. Evaluation is eager,
// depth-first, left-to-right. Unlike scanning and parsing, interpretation
// is fail-fast: the first runtime error aborts the statement loop.
type Interpreter struct {
	globals *Environment
	env     *Environment
	output  io.Writer
}

// New creates an interpreter whose print statements write to output.
func New(output io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{
		globals: globals,
		env:     globals,
		output:  output,
	}
}

// Env returns the current environment (useful for REPL sessions that keep
// state across inputs).
func (i *Interpreter) Env() *Environment {
	return i.env
}

// Run executes the statements in order, stopping at the first runtime
// error. The interpreter never terminates the process; the caller decides
// what a non-nil error means.
func (i *Interpreter) Run(statements []ast.Stmt) *diag.Error {
	for _, stmt := range statements {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ---- statement execution ----

func (i *Interpreter) execStmt(stmt ast.Stmt) *diag.Error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.evalExpr(s.Expr)
		return err

	case *ast.PrintStmt:
		val, err := i.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.output, val.Debug())
		return nil

	case *ast.VarStmt:
		var val Value = NilVal{}
		if s.Init != nil {
			v, err := i.evalExpr(s.Init)
			if err != nil {
				return err
			}
			val = v
		}
		i.env.Define(s.Name, val)
		return nil

	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

// ---- expression evaluation ----

func (i *Interpreter) evalExpr(expr ast.Expr) (Value, *diag.Error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return NumberVal(e.Value), nil
	case *ast.StringLit:
		return StringVal(e.Value), nil
	case *ast.BoolLit:
		return BoolVal(e.Value), nil
	case *ast.NilLit:
		return NilVal{}, nil
	case *ast.GroupingExpr:
		return i.evalExpr(e.Expr)
	case *ast.UnaryExpr:
		return i.evalUnary(e)
	case *ast.BinaryExpr:
		return i.evalBinary(e)
	case *ast.TernaryExpr:
		return i.evalTernary(e)
	case *ast.VariableExpr:
		val, ok := i.env.Get(e.Name)
		if !ok {
			return nil, diag.Runtimef(e.GetSpan(), "Undefined variable '%s'", e.Name)
		}
		return val, nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, *diag.Error) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.MINUS:
		if num, ok := right.(NumberVal); ok {
			return NumberVal(-float64(num)), nil
		}
		return nil, diag.Runtimef(e.GetSpan(),
			"Illegal operand for unary '%s' expression: %s", e.Op.Kind, right.Debug())
	case token.BANG:
		if b, ok := ToBool(right); ok {
			return BoolVal(!b), nil
		}
		return nil, diag.Runtimef(e.GetSpan(),
			"Illegal operand for unary '%s' expression: %s", e.Op.Kind, right.Debug())
	default:
		// The parser only builds unary nodes for ! and -.
		panic(fmt.Sprintf("interpreter: illegal operator for unary expression: %s", e.Op.Kind))
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, *diag.Error) {
	// Both sides are evaluated unconditionally; == and != never
	// short-circuit.
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQ:
		return BoolVal(valuesEqual(left, right)), nil
	case token.NEQ:
		return BoolVal(!valuesEqual(left, right)), nil
	}

	leftNum, leftOk := left.(NumberVal)
	rightNum, rightOk := right.(NumberVal)
	if !leftOk || !rightOk {
		return nil, diag.Runtimef(e.GetSpan(),
			"Illegal operand for binary '%s' expression: %s %s %s",
			e.Op.Kind, left.Debug(), e.Op.Kind, right.Debug())
	}

	switch e.Op.Kind {
	case token.MINUS:
		return NumberVal(leftNum - rightNum), nil
	case token.PLUS:
		return NumberVal(leftNum + rightNum), nil
	case token.STAR:
		return NumberVal(leftNum * rightNum), nil
	case token.SLASH:
		// Division by zero follows IEEE-754: Inf or NaN, not an error.
		return NumberVal(leftNum / rightNum), nil
	case token.GT:
		return BoolVal(leftNum > rightNum), nil
	case token.GTE:
		return BoolVal(leftNum >= rightNum), nil
	case token.LT:
		return BoolVal(leftNum < rightNum), nil
	case token.LTE:
		return BoolVal(leftNum <= rightNum), nil
	default:
		panic(fmt.Sprintf("interpreter: illegal operator for binary expression: %s", e.Op.Kind))
	}
}

// evalTernary requires an explicit boolean condition (not general
// truthiness) and evaluates only the selected branch.
func (i *Interpreter) evalTernary(e *ast.TernaryExpr) (Value, *diag.Error) {
	cond, err := i.evalExpr(e.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(BoolVal)
	if !ok {
		return nil, diag.Runtimef(e.GetSpan(),
			"Non boolean type used as condition in ternary: %s", cond.Debug())
	}
	if bool(b) {
		return i.evalExpr(e.Then)
	}
	return i.evalExpr(e.Else)
}
