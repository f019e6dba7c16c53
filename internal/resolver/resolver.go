// Package resolver performs a single static pass over the parsed program,
// computing for every variable reference (Variable, Assign, This, Super)
// the number of lexical-scope hops from the point of reference down to the
// scope that declares the name. The interpreter consults this table
// instead of walking the environment chain by name, so closures, shadowing,
// and `this`/`super` binding all behave exactly as lexical scoping demands.
package resolver

import (
	"fmt"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/token"
)

// ResolveError is a static scoping violation detected during resolution.
type ResolveError struct {
	Token   token.Token
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Token.Pos.Line)
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	clsNone classKind = iota
	clsClass
	clsSubclass
)

// status tracks whether a name has only been declared, or fully defined,
// within its scope — reading a declared-not-defined name is an error
// (it catches `var a = a;`).
type status int

const (
	declared status = iota
	defined
)

// Resolver walks the AST once, before evaluation. It never evaluates
// expressions; it only tracks which scope each name belongs to.
type Resolver struct {
	scopes []map[string]status

	locals map[ast.Expr]int

	currentFunction functionKind
	currentClass    classKind

	errors []*ResolveError
}

// New creates a Resolver ready to resolve a complete program.
func New() *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int)}
}

// Errors returns every static scoping violation found during Resolve.
func (r *Resolver) Errors() []*ResolveError { return r.errors }

// Locals returns, for every resolved reference expression, its hop
// distance. A reference absent from this map is a global lookup.
func (r *Resolver) Locals() map[ast.Expr]int { return r.locals }

// Resolve walks every top-level statement. The global scope is implicit
// (never pushed as a map), matching the book's asymmetry: redeclaration is
// permitted at global scope but rejected inside any pushed scope.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()

	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, fnFunction)

	case *ast.Expression:
		r.resolveExpr(n.Expr)

	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.Print:
		r.resolveExpr(n.Expr)

	case *ast.Return:
		if r.currentFunction == fnNone {
			r.errorAt(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errorAt(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)

	case *ast.Class:
		r.resolveClass(n)

	default:
		panic(fmt.Sprintf("resolver: unhandled statement %T", s))
	}
}

func (r *Resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = clsClass

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Name.Lexeme == n.Name.Lexeme {
			r.errorAt(n.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = clsSubclass
		r.resolveExpr(n.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = defined
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = defined

	for _, method := range n.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if n.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if st, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && st == declared {
				r.errorAt(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name)

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.Grouping:
		r.resolveExpr(n.Inner)

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Literal:
		// no sub-expressions, nothing to resolve

	case *ast.This:
		if r.currentClass == clsNone {
			r.errorAt(n.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, n.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case clsNone:
			r.errorAt(n.Keyword, "Can't use 'super' outside of a class.")
		case clsClass:
			r.errorAt(n.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(n, n.Keyword)

	default:
		panic(fmt.Sprintf("resolver: unhandled expression %T", e))
	}
}

// resolveLocal searches the scope stack innermost-first for name and, if
// found at depth d (0 = current scope), records d as expr's hop distance.
// An unfound name is left unannotated and treated as a global at runtime.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treated as global.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]status))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-initialized in the current
// scope. Redeclaring a name within the same non-global scope is an error;
// the global scope (no pushed map) permits it, matching spec's asymmetry.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = declared
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = defined
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	r.errors = append(r.errors, &ResolveError{Token: tok, Message: message})
}
