// Package parser groups scanned source lines into the statement trees the
// documentation layer consumes. It is line-oriented and forgiving: source
// it cannot make sense of degrades into flat statements instead of errors.
package parser

import (
	"os"
	"strings"

	"doclens/errors"
	"doclens/pkg/ast"
	"doclens/pkg/lexer"
)

// blockKeywords are the leading keywords that open an end-terminated block.
var blockKeywords = map[string]bool{
	"module": true,
	"class":  true,
	"def":    true,
	"if":     true,
	"unless": true,
	"while":  true,
	"until":  true,
	"case":   true,
	"begin":  true,
}

// Parser builds statement trees from source text.
type Parser struct{}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses one source file.
func (p *Parser) ParseFile(path string) ([]*ast.Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, "SOURCE_READ_FAILED", "failed to read source file").WithPosition(path, 0)
	}
	return p.Parse(string(data)), nil
}

// Parse splits source text into statements, attaching preceding comment
// runs as docstrings and nesting block bodies under their opening
// statement. Unbalanced end keywords are ignored.
func (p *Parser) Parse(source string) []*ast.Statement {
	var root []*ast.Statement
	var stack []*ast.Statement
	var pending []string

	appendTo := func(stmt *ast.Statement) {
		if len(stack) == 0 {
			root = append(root, stmt)
			return
		}
		top := stack[len(stack)-1]
		top.Block = append(top.Block, stmt)
	}

	for n, line := range strings.Split(source, "\n") {
		tokens := lexer.ScanLine(line, n+1)
		meaningful := significant(tokens)

		if len(meaningful) == 0 {
			if comment, ok := commentOnly(tokens); ok {
				pending = append(pending, comment)
			} else {
				// A blank line breaks comment attachment.
				pending = nil
			}
			continue
		}

		// A bare end closes the innermost open block.
		if meaningful[0].Type == lexer.TokenEnd && len(meaningful) == 1 {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			pending = nil
			continue
		}

		stmt := &ast.Statement{
			Tokens:    tokens,
			Docstring: strings.Join(pending, "\n"),
		}
		pending = nil
		appendTo(stmt)

		if opensBlock(meaningful) {
			stack = append(stack, stmt)
		}
	}

	return root
}

// significant drops whitespace and comment tokens.
func significant(tokens []lexer.Token) []lexer.Token {
	var out []lexer.Token
	for _, tok := range tokens {
		if tok.IsWhitespace() || tok.Type == lexer.TokenComment {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// commentOnly extracts the text of a line holding nothing but a comment.
func commentOnly(tokens []lexer.Token) (string, bool) {
	for _, tok := range tokens {
		if tok.Type == lexer.TokenComment {
			text := strings.TrimPrefix(tok.Text, "#")
			return strings.TrimPrefix(text, " "), true
		}
		if !tok.IsWhitespace() {
			return "", false
		}
	}
	return "", false
}

// opensBlock reports whether the statement's line opens an end-terminated
// block: a leading block keyword or a trailing do. One-line statements
// that already carry their own end do not nest.
func opensBlock(meaningful []lexer.Token) bool {
	last := meaningful[len(meaningful)-1]
	if last.Type == lexer.TokenEnd {
		return false
	}
	first := meaningful[0]
	if first.Type == lexer.TokenKeyword && blockKeywords[first.Text] {
		return true
	}
	// A do anywhere on the line opens a block (it may be followed by
	// block parameters).
	for _, tok := range meaningful {
		if tok.Type == lexer.TokenDo {
			return true
		}
	}
	return false
}
