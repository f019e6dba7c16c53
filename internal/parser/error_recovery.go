package parser

import "github.com/loxscript/golox/internal/token"

// synchronize discards tokens until it reaches a plausible declaration
// boundary: a just-consumed ';', or a token that starts a new statement.
// This bounds cascaded errors to one diagnostic per genuine defect instead
// of one per token the parser trips over while confused.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}

		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}
