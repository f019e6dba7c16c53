package ast

import (
	"fmt"
	"strings"
)

// PrintExpr renders an expression as a fully-parenthesized debug form, e.g.
// `(+ 1 (* 2 3))`. It is used by the `--dump-ast` CLI flag and by tests
// that check parser shape without depending on evaluation.
func PrintExpr(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		sb.WriteString(literalString(n.Value))
	case *Grouping:
		parenthesize(sb, "group", n.Inner)
	case *Unary:
		parenthesize(sb, n.Op.Lexeme, n.Right)
	case *Binary:
		parenthesize(sb, n.Op.Lexeme, n.Left, n.Right)
	case *Logical:
		parenthesize(sb, n.Op.Lexeme, n.Left, n.Right)
	case *Variable:
		sb.WriteString(n.Name.Lexeme)
	case *Assign:
		parenthesize(sb, "= "+n.Name.Lexeme, n.Value)
	case *Call:
		parenthesize(sb, "call", append([]Expr{n.Callee}, n.Args...)...)
	case *Get:
		parenthesize(sb, "."+n.Name.Lexeme, n.Object)
	case *Set:
		parenthesize(sb, "set-"+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		sb.WriteString("this")
	case *Super:
		sb.WriteString("(super." + n.Method.Lexeme + ")")
	default:
		sb.WriteString(fmt.Sprintf("<unknown expr %T>", e))
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		writeExpr(sb, e)
	}
	sb.WriteString(")")
}

func literalString(v any) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
