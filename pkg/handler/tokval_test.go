package handler

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

func scan(text string) []lexer.Token {
	return lexer.ScanLine(text, 1)
}

func TestTokval_LiteralKeywords(t *testing.T) {
	t.Run("true extracts to the boolean true", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenTrue, Text: "true"})
		require.True(t, ok)
		assert.Equal(t, true, value)
	})

	t.Run("false extracts to the boolean false", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenFalse, Text: "false"})
		require.True(t, ok)
		assert.Equal(t, false, value)
	})

	t.Run("nil extracts to a present nil value", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenNil, Text: "nil"})
		require.True(t, ok, "nil literal must be present, not absent")
		assert.Nil(t, value)
	})

	t.Run("literal keyword against a non-matching filter is absent", func(t *testing.T) {
		_, ok := Tokval(lexer.Token{Type: lexer.TokenTrue, Text: "true"}, FilterNumber)
		assert.False(t, ok)
	})
}

func TestTokval_Strings(t *testing.T) {
	t.Run("plain string loses its delimiters", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenString, Text: "'hello'"})
		require.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("interpolated string loses its delimiters", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenDString, Text: `"hello"`})
		require.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("string filter rejects symbols", func(t *testing.T) {
		_, ok := Tokval(lexer.Token{Type: lexer.TokenSymbol, Text: ":name"}, FilterString)
		assert.False(t, ok)
	})
}

func TestTokval_Values(t *testing.T) {
	t.Run("symbol keeps its symbolic identity", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenSymbol, Text: ":name"})
		require.True(t, ok)
		assert.Equal(t, docmodel.Symbol("name"), value)
	})

	t.Run("integer extracts to int64", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenInteger, Text: "42"})
		require.True(t, ok)
		assert.Equal(t, int64(42), value)
	})

	t.Run("float extracts to float64", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenFloat, Text: "3.14"})
		require.True(t, ok)
		assert.Equal(t, 3.14, value)
	})

	t.Run("regexp compiles with translated flags", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenRegexp, Text: "/ab+c/i"})
		require.True(t, ok)
		compiled, isRegexp := value.(*regexp.Regexp)
		require.True(t, isRegexp)
		assert.True(t, compiled.MatchString("xABBc"))
	})

	t.Run("uncompilable regexp falls back to raw text", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenRegexp, Text: "/a(/"})
		require.True(t, ok)
		assert.Equal(t, "/a(/", value)
	})

	t.Run("identifier passes through as text", func(t *testing.T) {
		value, ok := Tokval(lexer.Token{Type: lexer.TokenIdentifier, Text: "foo"}, FilterNode)
		require.True(t, ok)
		assert.Equal(t, "foo", value)
	})

	t.Run("explicit token kind widens the accepted set", func(t *testing.T) {
		_, ok := Tokval(lexer.Token{Type: lexer.TokenIVar, Text: "@x"}, FilterNode)
		assert.False(t, ok)

		value, ok := Tokval(lexer.Token{Type: lexer.TokenIVar, Text: "@x"}, FilterNode, lexer.TokenIVar)
		require.True(t, ok)
		assert.Equal(t, "@x", value)
	})
}

func TestTokvalList_Basics(t *testing.T) {
	t.Run("empty input yields an empty list", func(t *testing.T) {
		assert.Empty(t, TokvalList(nil))
		assert.Empty(t, TokvalList([]lexer.Token{}))
	})

	t.Run("mixed value kinds stay ordered", func(t *testing.T) {
		values := TokvalList(scan("a, 'b', :c, :d"))
		assert.Equal(t, []interface{}{"a", "b", docmodel.Symbol("c"), docmodel.Symbol("d")}, values)
	})

	t.Run("single entry yields one value", func(t *testing.T) {
		values := TokvalList(scan(":name"))
		assert.Equal(t, []interface{}{docmodel.Symbol("name")}, values)
	})

	t.Run("attribute filter drops non-attribute entries", func(t *testing.T) {
		values := TokvalList(scan(":reader, 42, :writer"), FilterAttribute)
		assert.Equal(t, []interface{}{docmodel.Symbol("reader"), docmodel.Symbol("writer")}, values)
	})
}

func TestTokvalList_Recovery(t *testing.T) {
	t.Run("rejected middle entry is dropped, not fatal", func(t *testing.T) {
		values := TokvalList(scan("'a', @x, 'c'"))
		assert.Equal(t, []interface{}{"a", "c"}, values)
	})

	t.Run("rejected token after accepted content discards the entry", func(t *testing.T) {
		values := TokvalList(scan(":a, b @x, :c"))
		assert.Equal(t, []interface{}{docmodel.Symbol("a"), docmodel.Symbol("c")}, values)
	})

	t.Run("statement keyword stops the list", func(t *testing.T) {
		values := TokvalList(scan(":a, :b, :c if x == 5"))
		assert.Equal(t, []interface{}{docmodel.Symbol("a"), docmodel.Symbol("b"), docmodel.Symbol("c")}, values)
	})

	t.Run("literal keywords do not stop the list", func(t *testing.T) {
		values := TokvalList(scan("true, nil, false"))
		assert.Equal(t, []interface{}{true, nil, false}, values)
	})

	t.Run("unbalanced closer ends the list region", func(t *testing.T) {
		values := TokvalList(scan(":a, :b), :c"))
		assert.Equal(t, []interface{}{docmodel.Symbol("a"), docmodel.Symbol("b")}, values)
	})
}

func TestTokvalList_Nesting(t *testing.T) {
	t.Run("leading parenthesis is a transparent wrapper", func(t *testing.T) {
		values := TokvalList(scan("(:a), :b"))
		assert.Equal(t, []interface{}{docmodel.Symbol("a"), docmodel.Symbol("b")}, values)
	})

	t.Run("nested call collapses to its textual form", func(t *testing.T) {
		values := TokvalList(scan("foo(1, 2), b"))
		assert.Equal(t, []interface{}{"foo12", "b"}, values)
	})

	t.Run("nested region with an empty accumulator contributes nothing", func(t *testing.T) {
		values := TokvalList(scan("a, [1, 2], b"))
		assert.Equal(t, []interface{}{"a", "b"}, values)
	})
}

func TestTokvalList_Idempotence(t *testing.T) {
	// Feeding the rendered textual form of a flat result list back through
	// the scanner yields the same values.
	first := TokvalList(scan("x, y, z"))
	require.Len(t, first, 3)

	var parts []string
	for _, value := range first {
		parts = append(parts, literalText(value))
	}
	second := TokvalList(scan(strings.Join(parts, ", ")))
	assert.Equal(t, first, second)
}
