// Package diag renders and emits the two diagnostic line formats the
// interpreter uses: a static (scan/parse/resolve) format and a distinct
// runtime format, matching spec.md §6/§7 exactly so stderr output is
// stable enough to snapshot-test.
package diag

import (
	"fmt"
	"io"

	"github.com/loxscript/golox/internal/token"
)

// Reporter accumulates the two process-wide-in-the-original error flags as
// per-instance state, so a REPL can create one Reporter per line and reset
// cleanly, while a file run uses a single Reporter for the whole program.
type Reporter struct {
	out io.Writer

	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter that writes diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// HadError reports whether any static (scan/parse/resolve) error was seen.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error aborted evaluation.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both flags, e.g. between REPL lines.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

// Error reports a lexical error at a bare line number, with no token to
// anchor a `where` clause (scanner errors have no offending token).
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a syntactic or static-semantic error anchored on
// tok, rendering "at end" for EOF or "at 'LEXEME'" otherwise.
func (r *Reporter) ErrorAtToken(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		r.report(tok.Pos.Line, " at end", message)
	} else {
		r.report(tok.Pos.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// RuntimeError reports a runtime failure anchored on the token that
// triggered it, in the distinct runtime format: the message first, then
// the line on its own line.
func (r *Reporter) RuntimeError(tok token.Token, message string) {
	fmt.Fprintf(r.out, "%s\n[line %d]\n", message, tok.Pos.Line)
	r.hadRuntimeError = true
}
