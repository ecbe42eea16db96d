package lexer

import (
	"strings"
	"unicode"
)

// keywords maps reserved words to their token types. Words that denote
// values get dedicated types so list parsing can let them through.
var keywords = map[string]TokenType{
	"if":     TokenKeyword,
	"unless": TokenKeyword,
	"while":  TokenKeyword,
	"until":  TokenKeyword,
	"case":   TokenKeyword,
	"when":   TokenKeyword,
	"then":   TokenKeyword,
	"else":   TokenKeyword,
	"elsif":  TokenKeyword,
	"begin":  TokenKeyword,
	"rescue": TokenKeyword,
	"ensure": TokenKeyword,
	"return": TokenKeyword,
	"yield":  TokenKeyword,
	"and":    TokenKeyword,
	"or":     TokenKeyword,
	"not":    TokenKeyword,
	"module": TokenKeyword,
	"class":  TokenKeyword,
	"def":    TokenKeyword,
	"do":     TokenDo,
	"end":    TokenEnd,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"self":   TokenSelf,
	"super":  TokenSuper,
	"nil":    TokenNil,
}

// ScanLine tokenizes a single source line. The scanner is deliberately
// permissive: it recognizes the token shapes the documentation layer cares
// about and degrades everything else to OP or OTHER tokens instead of
// reporting errors.
func ScanLine(text string, line int) []Token {
	var tokens []Token
	runes := []rune(text)
	i := 0

	emit := func(typ TokenType, text string) {
		tokens = append(tokens, Token{Type: typ, Text: text, Line: line})
	}

	// lastMeaningful returns the last non-whitespace token already emitted.
	lastMeaningful := func() (Token, bool) {
		for j := len(tokens) - 1; j >= 0; j-- {
			if !tokens[j].IsWhitespace() {
				return tokens[j], true
			}
		}
		return Token{}, false
	}

	for i < len(runes) {
		c := runes[i]

		switch {
		case c == ' ' || c == '\t':
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			emit(TokenSpace, string(runes[i:j]))
			i = j

		case c == '#':
			emit(TokenComment, string(runes[i:]))
			i = len(runes)

		case c == '\'' || c == '"' || c == '`':
			j := i + 1
			for j < len(runes) && runes[j] != c {
				if runes[j] == '\\' && j+1 < len(runes) {
					j++
				}
				j++
			}
			if j < len(runes) {
				j++ // include closing delimiter
			}
			typ := TokenString
			switch c {
			case '"':
				typ = TokenDString
			case '`':
				typ = TokenXString
			}
			emit(typ, string(runes[i:j]))
			i = j

		case c == ':' && i+1 < len(runes) && isIdentStart(runes[i+1]):
			j := i + 1
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}
			if j < len(runes) && (runes[j] == '?' || runes[j] == '!') {
				j++
			}
			emit(TokenSymbol, string(runes[i:j]))
			i = j

		case unicode.IsDigit(c):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			isFloat := false
			if j+1 < len(runes) && runes[j] == '.' && unicode.IsDigit(runes[j+1]) {
				isFloat = true
				j++
				for j < len(runes) && unicode.IsDigit(runes[j]) {
					j++
				}
			}
			if isFloat {
				emit(TokenFloat, string(runes[i:j]))
			} else {
				emit(TokenInteger, string(runes[i:j]))
			}
			i = j

		case c == '/' && regexpPossible(lastMeaningful):
			j := i + 1
			for j < len(runes) && runes[j] != '/' {
				if runes[j] == '\\' && j+1 < len(runes) {
					j++
				}
				j++
			}
			if j >= len(runes) {
				// Unterminated, treat as a plain operator.
				emit(TokenOp, "/")
				i++
				break
			}
			j++ // closing slash
			for j < len(runes) && isRegexpFlag(runes[j]) {
				j++
			}
			emit(TokenRegexp, string(runes[i:j]))
			i = j

		case c == '$' && i+1 < len(runes) && isIdentPart(runes[i+1]):
			j := i + 1
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}
			emit(TokenGVar, string(runes[i:j]))
			i = j

		case c == '@' && i+1 < len(runes) && isIdentStart(runes[i+1]):
			j := i + 1
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}
			emit(TokenIVar, string(runes[i:j]))
			i = j

		case isIdentStart(c):
			j := i
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}
			hasSuffix := false
			if j < len(runes) && (runes[j] == '?' || runes[j] == '!') {
				j++
				hasSuffix = true
			}
			word := string(runes[i:j])
			if typ, ok := keywords[word]; ok {
				emit(typ, word)
			} else if hasSuffix {
				emit(TokenMethodIdent, word)
			} else if unicode.IsUpper(c) {
				emit(TokenConstant, word)
			} else {
				emit(TokenIdentifier, word)
			}
			i = j

		default:
			switch c {
			case ',':
				emit(TokenComma, ",")
			case '(':
				emit(TokenLParen, "(")
			case ')':
				emit(TokenRParen, ")")
			case '{':
				emit(TokenLBrace, "{")
			case '}':
				emit(TokenRBrace, "}")
			case '[':
				emit(TokenLBracket, "[")
			case ']':
				emit(TokenRBracket, "]")
			default:
				if strings.ContainsRune("+-*/%<>=!&|^~.?:;", c) {
					emit(TokenOp, string(c))
				} else {
					emit(TokenOther, string(c))
				}
			}
			i++
		}
	}

	return tokens
}

// regexpPossible decides whether a slash at the current position can open a
// regexp literal. A slash after a value token is division.
func regexpPossible(lastMeaningful func() (Token, bool)) bool {
	prev, ok := lastMeaningful()
	if !ok {
		return true
	}
	switch prev.Type {
	case TokenOp, TokenComma, TokenLParen, TokenLBracket, TokenLBrace, TokenKeyword:
		return true
	default:
		return false
	}
}

func isRegexpFlag(c rune) bool {
	return c == 'i' || c == 'm' || c == 'x' || c == 'o' || c == 'u' || c == 's'
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
