// Package interp implements the evaluator: it walks the AST produced by
// the parser and annotated by the resolver, directly executing statements
// for effect and expressions for value against an environment chain.
package interp

import (
	"fmt"
	"io"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/token"
)

// Interpreter holds everything evaluation needs: the global scope, the
// currently active scope, the resolver's hop-distance table, and the two
// external collaborators spec.md calls out — a print sink and a clock
// source. It has no other external dependency: no network, no file I/O,
// no persisted state.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int

	stdout io.Writer
	clockFn func() float64
}

// New creates an Interpreter whose `print` statements write to stdout and
// whose `clock()` builtin reports time via clockFn (seconds, resolution
// >= ms).
func New(stdout io.Writer, clockFn func() float64) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", newClock())

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		stdout:      stdout,
		clockFn:     clockFn,
	}
}

// SetLocals installs the resolver's hop-distance table. It must be called
// with the resolver's output for the same program before Interpret.
func (i *Interpreter) SetLocals(locals map[ast.Expr]int) {
	i.locals = locals
}

func (i *Interpreter) clock() float64 { return i.clockFn() }

// Interpret executes a whole program's statements in order. It stops and
// returns the first RuntimeError encountered; the caller is expected to
// report it through the diagnostic sink.
func (i *Interpreter) Interpret(statements []ast.Stmt) *RuntimeError {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if rtErr, ok := err.(*RuntimeError); ok {
				return rtErr
			}
			// A *returnSignal escaping every statement means `return` ran
			// outside any function call boundary; the resolver rejects
			// this statically, so reaching here would be an interpreter bug.
			panic(fmt.Sprintf("interp: unhandled control signal %v", err))
		}
	}
	return nil
}

// execute runs one statement for effect, returning a *RuntimeError or
// *returnSignal if control must unwind, or nil on normal completion.
func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(n.Expr)
		return err

	case *ast.Print:
		v, err := i.evaluate(n.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, Stringify(v))
		return nil

	case *ast.Var:
		var value Value
		if n.Initializer != nil {
			v, err := i.evaluate(n.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(n.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return i.executeBlock(n.Statements, NewEnclosedEnvironment(i.environment))

	case *ast.If:
		cond, err := i.evaluate(n.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return i.execute(n.Then)
		} else if n.Else != nil {
			return i.execute(n.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := i.evaluate(n.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := i.execute(n.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := NewFunction(n, i.environment, false)
		i.environment.Define(n.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value
		if n.Value != nil {
			v, err := i.evaluate(n.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}

	case *ast.Class:
		return i.executeClass(n)

	default:
		panic(fmt.Sprintf("interp: unhandled statement %T", stmt))
	}
}

func (i *Interpreter) executeClass(n *ast.Class) error {
	var superclass *LoxClass
	if n.Superclass != nil {
		v, err := i.evaluate(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return &RuntimeError{Token: n.Superclass.Name, Message: "Superclass must be a class."}
		}
		superclass = sc
	}

	i.environment.Define(n.Name.Lexeme, nil)

	env := i.environment
	if n.Superclass != nil {
		env = NewEnclosedEnvironment(i.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, env, m.Name.Lexeme == "init")
	}

	class := NewClass(n.Name.Lexeme, superclass, methods)

	if err := i.environment.Assign(n.Name, class); err != nil {
		return err
	}
	return nil
}

// executeBlock runs statements against env, always restoring the
// previously active environment on the way out — including when a
// *returnSignal or *RuntimeError is unwinding through it.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// evaluate computes an expression's value. It never returns a
// *returnSignal; a Call that triggers one consumes it at the function
// call boundary (see LoxFunction.Call).
func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Grouping:
		return i.evaluate(n.Inner)

	case *ast.Unary:
		return i.evalUnary(n)

	case *ast.Binary:
		return i.evalBinary(n)

	case *ast.Logical:
		return i.evalLogical(n)

	case *ast.Variable:
		return i.lookUpVariable(n.Name, n)

	case *ast.Assign:
		return i.evalAssign(n)

	case *ast.Call:
		return i.evalCall(n)

	case *ast.Get:
		return i.evalGet(n)

	case *ast.Set:
		return i.evalSet(n)

	case *ast.This:
		return i.lookUpVariable(n.Keyword, n)

	case *ast.Super:
		return i.evalSuper(n)

	default:
		panic(fmt.Sprintf("interp: unhandled expression %T", expr))
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}

func (i *Interpreter) evalAssign(n *ast.Assign) (Value, error) {
	value, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[n]; ok {
		i.environment.AssignAt(distance, n.Name, value)
	} else if err := i.globals.Assign(n.Name, value); err != nil {
		return nil, err
	}

	return value, nil
}

func (i *Interpreter) evalLogical(n *ast.Logical) (Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}

	if n.Op.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !IsTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(n.Right)
}

func (i *Interpreter) evalUnary(n *ast.Unary) (Value, error) {
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.MINUS:
		f, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operand must be a number."}
		}
		return -f, nil
	case token.BANG:
		return !IsTruthy(right), nil
	}

	panic(fmt.Sprintf("interp: unhandled unary operator %v", n.Op.Kind))
}

func (i *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: n.Op, Message: "Operands must be two numbers or two strings."}

	case token.MINUS:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf - rf, nil

	case token.STAR:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf * rf, nil

	case token.SLASH:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf / rf, nil

	case token.GREATER:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf > rf, nil

	case token.GREATER_EQUAL:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf >= rf, nil

	case token.LESS:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf < rf, nil

	case token.LESS_EQUAL:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: n.Op, Message: "Operands must be numbers."}
		}
		return lf <= rf, nil

	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}

	panic(fmt.Sprintf("interp: unhandled binary operator %v", n.Op.Kind))
}

func numberOperands(left, right Value) (float64, float64, bool) {
	lf, ok := left.(float64)
	if !ok {
		return 0, 0, false
	}
	rf, ok := right.(float64)
	if !ok {
		return 0, 0, false
	}
	return lf, rf, true
}

func (i *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := i.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: n.Paren, Message: "Can only call functions and classes."}
	}

	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Token:   n.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
		}
	}

	value, rtErr := callable.Call(i, args)
	if rtErr != nil {
		return nil, rtErr
	}
	return value, nil
}

func (i *Interpreter) evalGet(n *ast.Get) (Value, error) {
	obj, err := i.evaluate(n.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := obj.(*LoxInstance)
	if !ok {
		return nil, &RuntimeError{Token: n.Name, Message: "Only instances have properties."}
	}

	v, rtErr := instance.Get(n.Name)
	if rtErr != nil {
		return nil, rtErr
	}
	return v, nil
}

func (i *Interpreter) evalSet(n *ast.Set) (Value, error) {
	obj, err := i.evaluate(n.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := obj.(*LoxInstance)
	if !ok {
		return nil, &RuntimeError{Token: n.Name, Message: "Only instances have fields."}
	}

	value, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(n.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(n *ast.Super) (Value, error) {
	distance := i.locals[n]
	superclass, _ := i.environment.GetAt(distance, "super").(*LoxClass)

	// `this` sits exactly one scope inside the `super` scope, both pushed
	// together by the resolver and the class-statement evaluator.
	object, _ := i.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.FindMethod(n.Method.Lexeme)
	if method == nil {
		return nil, &RuntimeError{Token: n.Method, Message: "Undefined property '" + n.Method.Lexeme + "'."}
	}

	return method.bind(object), nil
}
