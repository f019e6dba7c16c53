package resolver

import (
	"testing"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
)

func resolve(t *testing.T, source string) (*Resolver, []ast.Stmt) {
	t.Helper()
	tokens := lexer.New(source).ScanTokens()
	p := parser.New(tokens)
	stmts := p.Parse()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	r := New()
	r.Resolve(stmts)
	return r, stmts
}

func TestResolveOwnInitializerIsAnError(t *testing.T) {
	r, _ := resolve(t, "{ var a = a; }")
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
	if r.Errors()[0].Message != "Can't read local variable in its own initializer." {
		t.Errorf("got message %q", r.Errors()[0].Message)
	}
}

func TestResolveRedeclarationInLocalScopeIsAnError(t *testing.T) {
	r, _ := resolve(t, "{ var a = 1; var a = 2; }")
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
	if r.Errors()[0].Message != "Already a variable with this name in this scope." {
		t.Errorf("got message %q", r.Errors()[0].Message)
	}
}

func TestResolveRedeclarationAtGlobalScopeIsAllowed(t *testing.T) {
	r, _ := resolve(t, "var a = 1; var a = 2;")
	if len(r.Errors()) != 0 {
		t.Errorf("unexpected errors at global scope: %v", r.Errors())
	}
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	r, _ := resolve(t, "return 1;")
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't return from top-level code." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveReturnValueFromInitializerIsAnError(t *testing.T) {
	r, _ := resolve(t, "class C { init() { return 1; } }")
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't return a value from an initializer." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveBareReturnFromInitializerIsFine(t *testing.T) {
	r, _ := resolve(t, "class C { init() { return; } }")
	if len(r.Errors()) != 0 {
		t.Errorf("unexpected errors: %v", r.Errors())
	}
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	r, _ := resolve(t, "print this;")
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'this' outside of a class." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveSuperOutsideClassIsAnError(t *testing.T) {
	r, _ := resolve(t, "print super.foo;")
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'super' outside of a class." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveSuperInClassWithoutSuperclassIsAnError(t *testing.T) {
	r, _ := resolve(t, "class C { m() { super.m(); } }")
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'super' in a class with no superclass." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveSelfInheritingClassIsAnError(t *testing.T) {
	r, _ := resolve(t, "class C < C {}")
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "A class can't inherit from itself." {
		t.Fatalf("got errors %+v", r.Errors())
	}
}

func TestResolveHopDistanceForNestedScopes(t *testing.T) {
	r, stmts := resolve(t, `
var a = "global";
{
  var b = "outer";
  {
    print a;
    print b;
  }
}
`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}

	outer := stmts[1].(*ast.Block)
	inner := outer.Statements[1].(*ast.Block)
	printA := inner.Statements[0].(*ast.Print).Expr.(*ast.Variable)
	printB := inner.Statements[1].(*ast.Print).Expr.(*ast.Variable)

	if _, ok := r.Locals()[printA]; ok {
		t.Errorf("reference to global 'a' should not be in locals: %v", r.Locals()[printA])
	}
	if dist, ok := r.Locals()[printB]; !ok || dist != 1 {
		t.Errorf("reference to 'b' two scopes in: got dist=%d ok=%v, want 1", dist, ok)
	}
}

func TestResolveClosureCapturesDeclaringScopeDistance(t *testing.T) {
	r, stmts := resolve(t, `
fun makeCounter() {
  var count = 0;
  fun counter() {
    count = count + 1;
    return count;
  }
  return counter;
}
`)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", r.Errors())
	}

	outerFn := stmts[0].(*ast.Function)
	innerFn := outerFn.Body[1].(*ast.Function)
	assign := innerFn.Body[0].(*ast.Expression).Expr.(*ast.Assign)

	if dist, ok := r.Locals()[assign]; !ok || dist != 1 {
		t.Errorf("assignment to enclosing 'count': got dist=%d ok=%v, want 1", dist, ok)
	}
}
