// Package ast defines the Expression and Statement sum types produced by
// the parser and walked by the resolver and interpreter.
//
// Each variant is its own pointer-receiver struct implementing Expr or
// Stmt; there is no Visitor double-dispatch hierarchy here — the
// resolver and interpreter each switch once over the concrete type, which
// is the idiomatic Go shape for a closed sum type. Pointer identity of a
// concrete *Variable / *Assign / *This / *Super node is also the key the
// resolver uses to record a lexical-scope hop distance for that reference
// (see internal/resolver), so expression nodes must never be copied by
// value once built.
package ast

import "github.com/loxscript/golox/internal/token"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a bare value: nil, a bool, a number, or a string.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so printing and some diagnostics can tell `(a)` from `a`.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}

// Unary is a prefix operator applied to one operand: `-right` or `!right`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (*Unary) exprNode() {}

// Binary is an infix arithmetic, comparison, or equality operator.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

// Logical is `and`/`or`, kept separate from Binary because both
// short-circuit and return an operand rather than a coerced bool.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) exprNode() {}

// Variable is a reference to a named value.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}

// Assign stores a new value into an already-declared variable.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Call invokes a callee with an ordered argument list.
type Call struct {
	Callee Expr
	Paren  token.Token // closing ')' — anchors arity/type-error diagnostics
	Args   []Expr
}

func (*Call) exprNode() {}

// Get reads a property or bound method off an instance.
type Get struct {
	Object Expr
	Name   token.Token
}

func (*Get) exprNode() {}

// Set stores a field on an instance.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (*Set) exprNode() {}

// This is the `this` keyword, resolved as a local variable reference into
// the synthetic scope the resolver/interpreter push around methods.
type This struct {
	Keyword token.Token
}

func (*This) exprNode() {}

// Super is `super.method`, resolved one scope above `this`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Super) exprNode() {}
