package interp

import (
	"fmt"

	"github.com/loxscript/golox/internal/token"
)

// signal is the non-nil return from executing a statement: either a
// runtime failure or a return-value unwind. This is the dedicated
// control-flow channel the design notes call for in place of the
// reference implementation's use of exceptions — `return` unwinds by
// returning a *returnSignal up through ordinary Go call frames until a
// function call boundary catches it, and a *RuntimeError unwinds the same
// way until Interpret returns it to its caller for reporting.
type signal interface {
	error
	isSignal()
}

// returnSignal carries a `return` statement's value up to the function
// call boundary that should receive it.
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string { return "return" }
func (*returnSignal) isSignal()       {}

// RuntimeError is a runtime failure: a type mismatch, an undefined name,
// a non-callable call, wrong arity, or an invalid property access. It
// carries the token whose line anchors the diagnostic.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Token.Pos.Line)
}

func (*RuntimeError) isSignal() {}
