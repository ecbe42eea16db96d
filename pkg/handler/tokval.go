package handler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// Filter is a group of token kinds accepted by Tokval. Filters expand
// before matching; passing no filter means FilterValue.
type Filter int

const (
	// FilterValue accepts any token that denotes a literal value, plus
	// everything FilterNode accepts.
	FilterValue Filter = iota
	// FilterNode accepts identifier-like tokens that name a construct.
	FilterNode
	// FilterString accepts the plain, interpolated and shell string kinds.
	FilterString
	// FilterAttribute accepts the kinds valid in attribute declarations:
	// symbols and plain strings.
	FilterAttribute
	// FilterIdentifier accepts plain identifiers, method identifiers and
	// global variables.
	FilterIdentifier
	// FilterNumber accepts float and integer literals.
	FilterNumber
)

var (
	stringKinds = []lexer.TokenType{
		lexer.TokenString, lexer.TokenDString, lexer.TokenXString, lexer.TokenDXString,
	}
	nodeKinds = []lexer.TokenType{
		lexer.TokenIdentifier, lexer.TokenMethodIdent, lexer.TokenConstant, lexer.TokenGVar,
	}
	literalKinds = []lexer.TokenType{
		lexer.TokenSymbol, lexer.TokenFloat, lexer.TokenInteger, lexer.TokenRegexp,
		lexer.TokenTrue, lexer.TokenFalse, lexer.TokenNil, lexer.TokenSelf, lexer.TokenSuper,
	}
)

func filterKinds(f Filter) []lexer.TokenType {
	switch f {
	case FilterValue:
		kinds := append([]lexer.TokenType{}, stringKinds...)
		kinds = append(kinds, literalKinds...)
		return append(kinds, nodeKinds...)
	case FilterNode:
		return nodeKinds
	case FilterString:
		return stringKinds
	case FilterAttribute:
		return []lexer.TokenType{lexer.TokenSymbol, lexer.TokenString}
	case FilterIdentifier:
		return []lexer.TokenType{lexer.TokenIdentifier, lexer.TokenMethodIdent, lexer.TokenGVar}
	case FilterNumber:
		return []lexer.TokenType{lexer.TokenFloat, lexer.TokenInteger}
	default:
		return nil
	}
}

// expandFilters builds the accepted kind set from a mix of Filter groups
// and concrete token types. No filters means the generic value filter.
func expandFilters(accepted []interface{}) map[lexer.TokenType]bool {
	if len(accepted) == 0 {
		accepted = []interface{}{FilterValue}
	}
	kinds := make(map[lexer.TokenType]bool)
	for _, item := range accepted {
		switch f := item.(type) {
		case Filter:
			for _, kind := range filterKinds(f) {
				kinds[kind] = true
			}
		case lexer.TokenType:
			kinds[f] = true
		}
	}
	return kinds
}

// Tokval maps one token to a typed literal value under the accepted kind
// filters. The second result is false when the token's kind is not in the
// expanded accepted set. A nil literal yields (nil, true).
func Tokval(tok lexer.Token, accepted ...interface{}) (interface{}, bool) {
	return tokvalKinds(tok, expandFilters(accepted))
}

func tokvalKinds(tok lexer.Token, kinds map[lexer.TokenType]bool) (interface{}, bool) {
	if !kinds[tok.Type] {
		return nil, false
	}

	switch tok.Type {
	case lexer.TokenString, lexer.TokenDString, lexer.TokenXString, lexer.TokenDXString:
		// Strip the delimiter characters only; no escape processing.
		if len(tok.Text) < 2 {
			return "", true
		}
		return tok.Text[1 : len(tok.Text)-1], true
	case lexer.TokenSymbol:
		return docmodel.Symbol(strings.TrimPrefix(tok.Text, ":")), true
	case lexer.TokenFloat:
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, false
		}
		return value, true
	case lexer.TokenInteger:
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, false
		}
		return value, true
	case lexer.TokenRegexp:
		return regexpValue(tok.Text), true
	case lexer.TokenTrue:
		return true, true
	case lexer.TokenFalse:
		return false, true
	case lexer.TokenNil:
		return nil, true
	default:
		// Identifiers, constants and the remaining accepted kinds are not
		// reduced further.
		return tok.Text, true
	}
}

// regexpValue compiles /pattern/flags into a regexp. The i and x flags map
// directly; m means dot-matches-newline, which is Go's s flag. Flags with
// no Go equivalent are dropped. If the pattern does not compile, the raw
// token text is returned instead.
func regexpValue(text string) interface{} {
	end := strings.LastIndex(text, "/")
	if end <= 0 {
		return text
	}
	pattern := text[1:end]
	var goFlags strings.Builder
	for _, flag := range text[end+1:] {
		switch flag {
		case 'i':
			goFlags.WriteRune('i')
		case 'm':
			goFlags.WriteRune('s')
		case 'x':
			goFlags.WriteRune('x')
		}
	}
	if goFlags.Len() > 0 {
		pattern = "(?" + goFlags.String() + ")" + pattern
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return text
	}
	return compiled
}

// literalText renders an extracted value back to its textual form, used
// when a multi-element accumulator collapses to a single raw-text value.
func literalText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case docmodel.Symbol:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case *regexp.Regexp:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// TokvalList consumes an ordered token sequence and produces the ordered
// literal values of a comma-delimited list. It is a single left-to-right
// pass with bounded state; malformed input truncates the output rather
// than producing an error.
//
// A left parenthesis immediately following a comma boundary is a
// transparent call wrapper and does not nest. A rejected entry at depth 0
// discards its partial content and swallows tokens until the next comma;
// rejected nested content keeps the entry but marks it complete. These two
// recoveries are intentionally different and must stay separate.
func TokvalList(tokens []lexer.Token, accepted ...interface{}) []interface{} {
	if len(tokens) == 0 {
		return nil
	}

	kinds := expandFilters(accepted)
	groups := [][]interface{}{nil}
	depth := 0
	wrapperDepth := 0
	afterComma := true
	needComma := false

	cur := func() []interface{} { return groups[len(groups)-1] }
	push := func(item interface{}) { groups[len(groups)-1] = append(groups[len(groups)-1], item) }

loop:
	for _, tok := range tokens {
		value, hasValue := tokvalKinds(tok, kinds)
		appendable := len(cur()) > 0 && hasValue

		switch tok.Type {
		case lexer.TokenComma:
			if depth == 0 {
				if len(cur()) > 0 {
					groups = append(groups, nil)
				}
				needComma = false
				afterComma = true
			} else if appendable {
				push(tok.Text)
			}

		case lexer.TokenLParen:
			if afterComma {
				wrapperDepth++
			} else {
				depth++
				if appendable {
					push(tok.Text)
				}
			}

		case lexer.TokenRParen:
			if wrapperDepth > 0 {
				wrapperDepth--
			} else {
				if depth > 0 && hasValue {
					push(tok.Text)
				}
				depth--
			}

		case lexer.TokenLBrace, lexer.TokenLBracket, lexer.TokenDo:
			depth++
			if hasValue {
				push(tok.Text)
			}

		case lexer.TokenRBrace, lexer.TokenRBracket, lexer.TokenEnd:
			if hasValue {
				push(tok.Text)
			}
			depth--

		default:
			// A statement keyword ends the list region; a trailing
			// modifier is not part of the list.
			if tok.Type == lexer.TokenKeyword {
				break loop
			}

			if !tok.IsWhitespace() {
				afterComma = false
			}

			if depth == 0 {
				if tok.IsWhitespace() || needComma {
					continue
				}
				if hasValue {
					push(value)
				} else {
					groups[len(groups)-1] = nil
					needComma = true
				}
			} else if appendable {
				needComma = true
				push(tok.Text)
			}
		}

		// An unbalanced closer signals the end of the list region.
		if depth < 0 {
			break
		}
	}

	var results []interface{}
	for _, group := range groups {
		switch len(group) {
		case 0:
		case 1:
			results = append(results, group[0])
		default:
			var b strings.Builder
			for _, item := range group {
				b.WriteString(literalText(item))
			}
			results = append(results, b.String())
		}
	}
	return results
}
