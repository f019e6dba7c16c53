package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/interp"
)

// runREPL implements the zero-argument interactive prompt: print "> ",
// read one line, evaluate it, and reset the compile-error flag before the
// next prompt — a compile error on one line must never poison the next.
// EOF (Ctrl-D) exits cleanly with status 0.
func runREPL() error {
	scanner := bufio.NewScanner(os.Stdin)
	reporter := diag.New(os.Stderr)
	interpreter := interp.New(os.Stdout, clockSource)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}

		reporter.Reset()
		interpret(scanner.Text(), interpreter, reporter)
	}
}
