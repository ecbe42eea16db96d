package handler

import (
	"strings"

	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// meaningfulTokens drops whitespace and comment tokens.
func meaningfulTokens(tokens []lexer.Token) []lexer.Token {
	var out []lexer.Token
	for _, tok := range tokens {
		if tok.IsWhitespace() || tok.Type == lexer.TokenComment {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// constantPath reads a possibly qualified constant path (A::B::C) starting
// at index start of a meaningful token slice. It returns the joined path
// and the index of the first token past it.
func constantPath(tokens []lexer.Token, start int) (string, int) {
	var b strings.Builder
	i := start
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Type == lexer.TokenConstant || (tok.Type == lexer.TokenOp && tok.Text == ":") {
			b.WriteString(tok.Text)
			i++
			continue
		}
		break
	}
	return b.String(), i
}

// tokensAfterFirst returns the raw statement tokens following the first
// meaningful token. Used by handlers whose arguments form a literal list.
func tokensAfterFirst(tokens []lexer.Token) []lexer.Token {
	seen := false
	for i, tok := range tokens {
		if tok.IsWhitespace() || tok.Type == lexer.TokenComment {
			continue
		}
		if seen {
			return tokens[i:]
		}
		seen = true
	}
	return nil
}

// symbolName converts an extracted attribute or method name value to its
// plain name string.
func symbolName(value interface{}) string {
	switch v := value.(type) {
	case docmodel.Symbol:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}
