package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/interp"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
)

// clockSource is the Interpreter's clock collaborator: wall-clock seconds
// with sub-millisecond resolution.
func clockSource() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// compile runs the scanner, parser, and resolver over source, reporting
// every diagnostic it finds through r. It returns the resolved statement
// sequence and hop-distance table, or nil if any static error occurred —
// evaluation must never begin on a program that failed to compile.
func compile(source string, r *diag.Reporter) ([]ast.Stmt, map[ast.Expr]int) {
	l := lexer.New(source)
	tokens := l.ScanTokens()
	for _, e := range l.Errors() {
		r.Error(e.Line, e.Message)
	}

	p := parser.New(tokens)
	statements := p.Parse()
	for _, e := range p.Errors() {
		r.ErrorAtToken(e.Token, e.Message)
	}

	if r.HadError() {
		return nil, nil
	}

	res := resolver.New()
	res.Resolve(statements)
	for _, e := range res.Errors() {
		r.ErrorAtToken(e.Token, e.Message)
	}

	if r.HadError() {
		return nil, nil
	}

	if dumpAST {
		for _, stmt := range statements {
			if exprStmt, ok := stmt.(*ast.Expression); ok {
				fmt.Println(ast.PrintExpr(exprStmt.Expr))
			}
		}
	}

	return statements, res.Locals()
}

// interpret compiles and, if compilation succeeded, evaluates source
// against i, reporting any runtime error through r. It returns true iff
// evaluation ran (compilation succeeded), letting callers distinguish
// "nothing ran" from "ran cleanly".
func interpret(source string, i *interp.Interpreter, r *diag.Reporter) bool {
	statements, locals := compile(source, r)
	if r.HadError() {
		return false
	}

	i.SetLocals(locals)
	if err := i.Interpret(statements); err != nil {
		r.RuntimeError(err.Token, err.Message)
	}
	return true
}

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}
