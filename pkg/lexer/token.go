package lexer

import "fmt"

type TokenType int

const (
	TokenEOF      TokenType = iota
	TokenComma              // ,
	TokenLParen             // (
	TokenRParen             // )
	TokenLBrace             // {
	TokenRBrace             // }
	TokenLBracket           // [
	TokenRBracket           // ]
	TokenDo                 // do
	TokenEnd                // end
	TokenSpace              // whitespace run
	TokenNewline            // \n
	TokenComment            // # ...
	TokenKeyword            // statement keyword (if, unless, while, ...)
	// Literal keywords. These carry a value and never terminate a statement.
	TokenTrue  // true
	TokenFalse // false
	TokenSelf  // self
	TokenSuper // super
	TokenNil   // nil
	// Literals
	TokenString        // 'plain'
	TokenDString       // "interpolated"
	TokenXString       // `shell`
	TokenDXString      // interpolated shell
	TokenSymbol        // :symbol
	TokenFloat         // 1.5
	TokenInteger       // 42
	TokenRegexp        // /pattern/flags
	TokenIdentifier    // local name
	TokenMethodIdent   // identifier ending in ? or !
	TokenConstant      // Capitalized name
	TokenGVar          // $global
	TokenIVar          // @ivar
	TokenOp            // operator or punctuation not listed above
	TokenOther         // anything unrecognized
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenComma:
		return "COMMA"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenLBrace:
		return "LBRACE"
	case TokenRBrace:
		return "RBRACE"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	case TokenDo:
		return "DO"
	case TokenEnd:
		return "END"
	case TokenSpace:
		return "SPACE"
	case TokenNewline:
		return "NEWLINE"
	case TokenComment:
		return "COMMENT"
	case TokenKeyword:
		return "KEYWORD"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenSelf:
		return "SELF"
	case TokenSuper:
		return "SUPER"
	case TokenNil:
		return "NIL"
	case TokenString:
		return "STRING"
	case TokenDString:
		return "DSTRING"
	case TokenXString:
		return "XSTRING"
	case TokenDXString:
		return "DXSTRING"
	case TokenSymbol:
		return "SYMBOL"
	case TokenFloat:
		return "FLOAT"
	case TokenInteger:
		return "INTEGER"
	case TokenRegexp:
		return "REGEXP"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenMethodIdent:
		return "METHOD_IDENT"
	case TokenConstant:
		return "CONSTANT"
	case TokenGVar:
		return "GVAR"
	case TokenIVar:
		return "IVAR"
	case TokenOp:
		return "OP"
	case TokenOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

type Token struct {
	Type TokenType
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("Token{Type: %s, Text: %q, Line: %d}", t.Type, t.Text, t.Line)
}

// IsLiteralKeyword reports whether the token is one of the keywords that
// denote a value (true/false/self/super/nil). These never terminate a
// statement in list parsing.
func (t Token) IsLiteralKeyword() bool {
	switch t.Type {
	case TokenTrue, TokenFalse, TokenSelf, TokenSuper, TokenNil:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is any keyword, including the
// block-forming do/end pair and the literal keywords.
func (t Token) IsKeyword() bool {
	return t.Type == TokenKeyword || t.Type == TokenDo || t.Type == TokenEnd || t.IsLiteralKeyword()
}

// IsWhitespace reports whether the token is spacing with no semantic content.
func (t Token) IsWhitespace() bool {
	return t.Type == TokenSpace || t.Type == TokenNewline
}
