// Package ast defines the statement abstraction consumed by the
// documentation layer. A statement is one syntactic unit plus its optional
// nested block and attached narrative comment.
package ast

import (
	"strings"

	"doclens/pkg/lexer"
)

// Statement is a pre-tokenized syntactic unit. Produced by the source
// parser; the documentation layer reads it and may recurse into Block.
type Statement struct {
	Tokens    []lexer.Token
	Block     []*Statement
	Docstring string
}

// First returns the first non-whitespace token of the statement.
func (s *Statement) First() lexer.Token {
	for _, tok := range s.Tokens {
		if !tok.IsWhitespace() {
			return tok
		}
	}
	return lexer.Token{Type: lexer.TokenEOF}
}

// Line returns the source line of the statement's first token.
func (s *Statement) Line() int {
	if len(s.Tokens) == 0 {
		return 0
	}
	return s.Tokens[0].Line
}

// Text renders the statement back to its textual form.
func (s *Statement) Text() string {
	var b strings.Builder
	for _, tok := range s.Tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Source renders the statement including its nested block, one statement
// per line. Used when stamping the source of produced objects.
func (s *Statement) Source() string {
	var b strings.Builder
	b.WriteString(s.Text())
	for _, nested := range s.Block {
		b.WriteString("\n")
		b.WriteString(nested.Source())
	}
	return b.String()
}
