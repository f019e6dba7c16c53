package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
)

// run executes source through the full pipeline and returns whatever was
// printed, failing the test on any scan, parse, or resolve error so that
// each case below exercises only the interpreter itself.
func run(t *testing.T, source string) (string, *RuntimeError) {
	t.Helper()

	l := lexer.New(source)
	tokens := l.ScanTokens()
	if len(l.Errors()) != 0 {
		t.Fatalf("scan errors: %v", l.Errors())
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}

	r := resolver.New()
	r.Resolve(stmts)
	if len(r.Errors()) != 0 {
		t.Fatalf("resolve errors: %v", r.Errors())
	}

	var out bytes.Buffer
	interp := New(&out, func() float64 { return 0 })
	interp.SetLocals(r.Locals())

	rtErr := interp.Interpret(stmts)
	return out.String(), rtErr
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if got := lines(out); len(got) != 1 || got[0] != "7" {
		t.Errorf("got %v, want [7]", got)
	}
}

func TestBlockShadowing(t *testing.T) {
	out, err := run(t, `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := []string{"inner", "outer"}
	if got := lines(out); !equalSlices(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClosuresCaptureByReference(t *testing.T) {
	out, err := run(t, `
fun makeCounter() {
  var count = 0;
  fun counter() {
    count = count + 1;
    print count;
  }
  return counter;
}
var c = makeCounter();
c();
c();
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := []string{"1", "2"}
	if got := lines(out); !equalSlices(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
class Greeter {
  greet() {
    print "hello from Greeter";
  }
}
class Loud < Greeter {
  greet() {
    super.greet();
    print "HELLO";
  }
}
Loud().greet();
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := []string{"hello from Greeter", "HELLO"}
	if got := lines(out); !equalSlices(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInitializerAlwaysReturnsThis(t *testing.T) {
	out, err := run(t, `
class Box {
  init(value) {
    this.value = value;
  }
}
var b = Box(42);
print b.value;
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if got := lines(out); len(got) != 1 || got[0] != "42" {
		t.Errorf("got %v, want [42]", got)
	}
}

func TestDesugaredForLoop(t *testing.T) {
	out, err := run(t, `
for (var i = 0; i < 3; i = i + 1) {
  print i;
}
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := []string{"0", "1", "2"}
	if got := lines(out); !equalSlices(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRuntimeErrorOnTypeMismatch(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Message != "Operands must be two numbers or two strings." {
		t.Errorf("got message %q", err.Message)
	}
}

func TestRuntimeErrorOnUndefinedVariable(t *testing.T) {
	_, err := run(t, "print undeclared;")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestRuntimeErrorCallingNonCallable(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Message != "Can only call functions and classes." {
		t.Errorf("got message %q", err.Message)
	}
}

func TestTruthinessAndEquality(t *testing.T) {
	out, err := run(t, `
print nil == nil;
print nil == false;
print 0 == 0;
if (0) print "zero is truthy"; else print "zero is falsy";
if ("") print "empty string is truthy"; else print "empty string is falsy";
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	want := []string{"true", "false", "true", "zero is truthy", "empty string is truthy"}
	if got := lines(out); !equalSlices(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTooManyCallArgumentsIsARuntimeError(t *testing.T) {
	_, err := run(t, `
fun f(a) { return a; }
f(1, 2);
`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Message != "Expected 1 arguments but got 2." {
		t.Errorf("got message %q", err.Message)
	}
}

func TestFieldShadowsMethod(t *testing.T) {
	out, err := run(t, `
class Box {
  value() { return "method"; }
}
var b = Box();
b.value = "field";
print b.value;
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if got := lines(out); len(got) != 1 || got[0] != "field" {
		t.Errorf("got %v, want [field]", got)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
