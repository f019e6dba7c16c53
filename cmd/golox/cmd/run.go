package cmd

import (
	"os"

	"github.com/loxscript/golox/internal/cliexit"
	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/interp"
)

// runFile reads path fully and runs it once, exiting 65 after a compile
// error or 70 after a runtime error, matching spec.md §6.
func runFile(path string) error {
	source, err := readFile(path)
	if err != nil {
		return cliexit.New(cliexit.Usage, err)
	}

	reporter := diag.New(os.Stderr)
	interpreter := interp.New(os.Stdout, clockSource)

	interpret(source, interpreter, reporter)

	switch {
	case reporter.HadError():
		return cliexit.New(cliexit.CompileError, nil)
	case reporter.HadRuntimeError():
		return cliexit.New(cliexit.RuntimeErrorCode, nil)
	default:
		return nil
	}
}
