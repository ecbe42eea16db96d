package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/pkg/lexer"
)

func TestParse_Nesting(t *testing.T) {
	p := NewParser()

	t.Run("end-terminated blocks nest under their opener", func(t *testing.T) {
		statements := p.Parse(`module Acme
  class Widget
    def run
    end
  end
end`)
		require.Len(t, statements, 1)
		module := statements[0]
		require.Len(t, module.Block, 1)
		class := module.Block[0]
		require.Len(t, class.Block, 1)
		assert.Equal(t, "def", class.Block[0].First().Text)
	})

	t.Run("do blocks nest too", func(t *testing.T) {
		statements := p.Parse(`items.each do |item|
  puts item
end`)
		require.Len(t, statements, 1)
		require.Len(t, statements[0].Block, 1)
	})

	t.Run("one-line statement carrying its own end does not nest", func(t *testing.T) {
		statements := p.Parse("def noop; end\ndef other; end")
		assert.Len(t, statements, 2)
	})

	t.Run("unbalanced end is ignored", func(t *testing.T) {
		statements := p.Parse("end\nVERSION = 1")
		require.Len(t, statements, 1)
		assert.Equal(t, "VERSION", statements[0].First().Text)
	})
}

func TestParse_Docstrings(t *testing.T) {
	p := NewParser()

	t.Run("preceding comment run attaches to the statement", func(t *testing.T) {
		statements := p.Parse(`# Line one.
# Line two.
def run
end`)
		require.Len(t, statements, 1)
		assert.Equal(t, "Line one.\nLine two.", statements[0].Docstring)
	})

	t.Run("blank line breaks the attachment", func(t *testing.T) {
		statements := p.Parse(`# Orphan comment.

def run
end`)
		require.Len(t, statements, 1)
		assert.Empty(t, statements[0].Docstring)
	})

	t.Run("trailing comment on a code line does not attach forward", func(t *testing.T) {
		statements := p.Parse(`VERSION = 1 # inline note
def run
end`)
		require.Len(t, statements, 2)
		assert.Empty(t, statements[1].Docstring)
	})
}

func TestParse_StatementShape(t *testing.T) {
	p := NewParser()

	statements := p.Parse("  attr_reader :name")
	require.Len(t, statements, 1)
	stmt := statements[0]

	assert.Equal(t, "attr_reader", stmt.First().Text)
	assert.Equal(t, lexer.TokenIdentifier, stmt.First().Type)
	assert.Equal(t, "  attr_reader :name", stmt.Text(), "rendered text keeps whitespace")
	assert.Equal(t, 1, stmt.Line())
}

func TestParseFile(t *testing.T) {
	t.Run("reads and parses a source file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "widget.rb")
		require.NoError(t, os.WriteFile(path, []byte("module Acme\nend\n"), 0644))

		statements, err := NewParser().ParseFile(path)
		require.NoError(t, err)
		require.Len(t, statements, 1)
		assert.Equal(t, "module", statements[0].First().Text)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "absent.rb"))
		assert.Error(t, err)
	})
}
