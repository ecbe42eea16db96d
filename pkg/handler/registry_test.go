package handler

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/pkg/lexer"
)

func TestMatchRule(t *testing.T) {
	t.Run("leading token kind", func(t *testing.T) {
		rule := MatchTokenType(lexer.TokenConstant)
		assert.True(t, rule.Matches(parse("VERSION = 1")[0]))
		assert.False(t, rule.Matches(parse("version = 1")[0]))
	})

	t.Run("leading token kind skips leading whitespace", func(t *testing.T) {
		rule := MatchTokenType(lexer.TokenConstant)
		assert.True(t, rule.Matches(parse("  VERSION = 1")[0]))
	})

	t.Run("leading token text is case-sensitive", func(t *testing.T) {
		rule := MatchTokenText("include")
		assert.True(t, rule.Matches(parse("include Enumerable")[0]))
		assert.False(t, rule.Matches(parse("Include Enumerable")[0]))
		assert.False(t, rule.Matches(parse("includes Enumerable")[0]))
	})

	t.Run("pattern runs against the rendered statement text", func(t *testing.T) {
		rule := MatchPattern(regexp.MustCompile(`^\s*attr_\w+`))
		assert.True(t, rule.Matches(parse("attr_reader :name")[0]))
		assert.True(t, rule.Matches(parse("   attr_writer :name")[0]))
		assert.False(t, rule.Matches(parse("battr_reader :name")[0]))
	})
}

func TestRegistry_Selection(t *testing.T) {
	stmt := parse("widget :a")[0]

	t.Run("selection preserves registration order", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&Descriptor{Name: "b", Match: MatchTokenText("widget")})
		registry.Register(&Descriptor{Name: "a", Match: MatchTokenText("widget")})
		registry.Register(&Descriptor{Name: "c", Match: MatchTokenText("other")})

		matched := registry.Select(stmt)
		require.Len(t, matched, 2)
		assert.Equal(t, "b", matched[0].Name)
		assert.Equal(t, "a", matched[1].Name)
	})

	t.Run("disable excludes without unregistering", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&Descriptor{Name: "a", Match: MatchTokenText("widget")})
		registry.Disable("a")

		assert.Empty(t, registry.Select(stmt))
		assert.Len(t, registry.Handlers(), 1)
	})

	t.Run("clear empties the registry for test isolation", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&Descriptor{Name: "a", Match: MatchTokenText("widget")})
		registry.Clear()

		assert.Empty(t, registry.Handlers())
		assert.Empty(t, registry.Select(stmt))
	})
}
