package interp

import (
	"testing"

	"github.com/loxscript/golox/internal/token"
)

func ident(lexeme string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Lexeme: lexeme}
}

func TestEnvironmentGetWalksEnclosingChain(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", "global-a")
	child := NewEnclosedEnvironment(global)
	child.Define("b", "child-b")

	if v, err := child.Get(ident("a")); err != nil || v != "global-a" {
		t.Errorf("got (%v, %v), want (global-a, nil)", v, err)
	}
	if v, err := child.Get(ident("b")); err != nil || v != "child-b" {
		t.Errorf("got (%v, %v), want (child-b, nil)", v, err)
	}
}

func TestEnvironmentGetUndefinedReportsRuntimeError(t *testing.T) {
	global := NewEnvironment()
	_, err := global.Get(ident("missing"))
	if err == nil {
		t.Fatal("expected an error for an undefined variable")
	}
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Message != "Undefined variable 'missing'." {
		t.Errorf("got %v", err)
	}
}

func TestEnvironmentAssignRequiresExistingBinding(t *testing.T) {
	global := NewEnvironment()
	if err := global.Assign(ident("missing"), 1.0); err == nil {
		t.Fatal("expected an error assigning an undeclared variable")
	}

	global.Define("x", 1.0)
	if err := global.Assign(ident("x"), 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := global.Get(ident("x")); v != 2.0 {
		t.Errorf("got %v, want 2", v)
	}
}

func TestEnvironmentGetAtAssignAtRoundTrip(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", "global")
	outer := NewEnclosedEnvironment(global)
	outer.Define("a", "outer")
	inner := NewEnclosedEnvironment(outer)

	if v := inner.GetAt(1, "a"); v != "outer" {
		t.Errorf("GetAt(1, a) = %v, want outer", v)
	}
	if v := inner.GetAt(2, "a"); v != "global" {
		t.Errorf("GetAt(2, a) = %v, want global", v)
	}

	inner.AssignAt(1, ident("a"), "outer-updated")
	if v := outer.values["a"]; v != "outer-updated" {
		t.Errorf("AssignAt(1, a) did not update outer scope, got %v", v)
	}
}

func TestExecuteBlockRestoresPreviousEnvironmentOnNormalExit(t *testing.T) {
	i := New(discardWriter{}, func() float64 { return 0 })
	previous := i.environment
	err := i.executeBlock(nil, NewEnclosedEnvironment(previous))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.environment != previous {
		t.Error("executeBlock did not restore the previous environment")
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
