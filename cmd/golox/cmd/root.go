// Package cmd wires golox's Cobra command tree: a single root command that
// dispatches on argument count exactly as spec.md §6 describes (no
// subcommands — golox is a single-binary interpreter, not a multi-tool
// like the teacher's dwscript CLI), plus shared pipeline plumbing used by
// both the file runner and the interactive prompt.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxscript/golox/internal/cliexit"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var dumpAST bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "golox is a tree-walking interpreter for the Lox language",
	Long: `golox is a Go implementation of Lox, the dynamically typed,
C-family scripting language from Crafting Interpreters.

With no arguments, golox starts an interactive prompt. With one argument,
it runs that file as a Lox script.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "before running, print the AST of each top-level expression statement (other statements are not printed)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if coded, ok := err.(*cliexit.CodedError); ok {
		if coded.Err != nil {
			fmt.Fprintln(os.Stderr, coded.Err)
		}
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return cliexit.CodeOf(err)
}

func runRoot(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return runREPL()
	case 1:
		return runFile(args[0])
	default:
		fmt.Println("Usage: golox [script]")
		return cliexit.New(cliexit.Usage, nil)
	}
}
