// Command golox runs the Lox tree-walking interpreter.
package main

import (
	"os"

	"github.com/loxscript/golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
