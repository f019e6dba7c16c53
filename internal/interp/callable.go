package interp

import "github.com/loxscript/golox/internal/ast"

// Callable is implemented by every value that can appear as the callee of
// a Call expression: the native clock function, user-defined functions and
// methods, and classes acting as their own constructor.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []Value) (Value, *RuntimeError)
	String() string
}

// LoxFunction is a user-defined function or method value. It closes over
// the environment active at its declaration, independent of the
// environment chain active at any later call site — this is what lets
// the closure-counter pattern (scenario #3) observe mutations made after
// the function was declared.
type LoxFunction struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a function value for declaration, closing over env.
func NewFunction(declaration *ast.Function, env *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: declaration, closure: env, isInitializer: isInitializer}
}

func (f *LoxFunction) Arity() int { return len(f.declaration.Params) }

// bind creates a fresh function value whose closure is a new scope
// enclosing f's closure, with `this` bound to instance. Same body, same
// initializer flag, new closure — this is how a method becomes a bound
// callable when read off an instance via Get.
func (f *LoxFunction) bind(instance *LoxInstance) *LoxFunction {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *LoxFunction) Call(i *Interpreter, args []Value) (Value, *RuntimeError) {
	env := NewEnclosedEnvironment(f.closure)
	for idx, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.declaration.Body, env)

	if ret, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if rtErr, ok := err.(*RuntimeError); ok {
		return nil, rtErr
	}

	// Normal completion (no return statement executed).
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *LoxFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// NativeFunction is a host-provided callable, used for the single
// built-in `clock`.
type NativeFunction struct {
	arity int
	name  string
	fn    func(i *Interpreter, args []Value) (Value, *RuntimeError)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(i *Interpreter, args []Value) (Value, *RuntimeError) {
	return n.fn(i, args)
}

func (n *NativeFunction) String() string { return "<native fn>" }
