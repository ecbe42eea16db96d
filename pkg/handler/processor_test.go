package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/errors"
	"doclens/logging"
	"doclens/pkg/ast"
	"doclens/pkg/docmodel"
	"doclens/pkg/parser"
)

func newTestProcessor(registry *Registry) (*Processor, *docmodel.Registry) {
	objects := docmodel.NewRegistry()
	resolver := NewResolver(objects, logging.NopLogger{}, false)
	processor := NewProcessor(registry, objects, resolver, logging.NopLogger{})
	processor.SetFile("test.rb")
	return processor, objects
}

func parse(source string) []*ast.Statement {
	return parser.NewParser().Parse(source)
}

func recordingDescriptor(name, word string, calls *[]string) *Descriptor {
	return &Descriptor{
		Name:  name,
		Match: MatchTokenText(word),
		Process: func(view *ProcessingView) ([]docmodel.Object, error) {
			*calls = append(*calls, name)
			return nil, nil
		},
	}
}

func TestProcessor_Dispatch(t *testing.T) {
	t.Run("statement without a matching handler is silently skipped", func(t *testing.T) {
		registry := NewRegistry()
		processor, _ := newTestProcessor(registry)

		objects, err := processor.Process(parse("mystery_statement")[0])
		assert.NoError(t, err)
		assert.Nil(t, objects)
	})

	t.Run("all matching handlers run in registration order", func(t *testing.T) {
		var calls []string
		registry := NewRegistry()
		registry.Register(recordingDescriptor("first", "widget", &calls))
		registry.Register(recordingDescriptor("second", "widget", &calls))
		processor, _ := newTestProcessor(registry)

		_, err := processor.Process(parse("widget :a")[0])
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("disabled handler is skipped", func(t *testing.T) {
		var calls []string
		registry := NewRegistry()
		registry.Register(recordingDescriptor("first", "widget", &calls))
		registry.Register(recordingDescriptor("second", "widget", &calls))
		registry.Disable("first")
		processor, _ := newTestProcessor(registry)

		_, err := processor.Process(parse("widget :a")[0])
		require.NoError(t, err)
		assert.Equal(t, []string{"second"}, calls)
	})
}

func TestProcessor_HandlerDefects(t *testing.T) {
	t.Run("nil process routine is a handler error", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&Descriptor{Name: "hollow", Match: MatchTokenText("widget")})
		processor, _ := newTestProcessor(registry)

		_, err := processor.Process(parse("widget")[0])
		require.Error(t, err)
		procErr, ok := errors.AsProcessingError(err)
		require.True(t, ok)
		assert.Equal(t, "HANDLER_NOT_IMPLEMENTED", procErr.Code)
		assert.Equal(t, "test.rb", procErr.File)
	})

	t.Run("panicking handler does not take down the traversal", func(t *testing.T) {
		var calls []string
		registry := NewRegistry()
		registry.Register(&Descriptor{
			Name:  "bomb",
			Match: MatchTokenText("widget"),
			Process: func(view *ProcessingView) ([]docmodel.Object, error) {
				panic("boom")
			},
		})
		registry.Register(recordingDescriptor("after", "widget", &calls))
		processor, _ := newTestProcessor(registry)

		_, err := processor.Process(parse("widget")[0])
		require.Error(t, err)
		procErr, ok := errors.AsProcessingError(err)
		require.True(t, ok)
		assert.Equal(t, "HANDLER_PANIC", procErr.Code)
		assert.Equal(t, []string{"after"}, calls, "remaining matching handlers still run")
	})

	t.Run("ParseAll absorbs failures and continues", func(t *testing.T) {
		var calls []string
		registry := NewRegistry()
		registry.Register(&Descriptor{
			Name:  "failing",
			Match: MatchTokenText("widget"),
			Process: func(view *ProcessingView) ([]docmodel.Object, error) {
				return nil, errors.NewHandlerError("WIDGET_BROKEN", "broken")
			},
		})
		registry.Register(recordingDescriptor("gadget", "gadget", &calls))
		processor, _ := newTestProcessor(registry)

		processor.ParseAll(parse("widget\ngadget"))
		assert.Equal(t, []string{"gadget"}, calls)
	})
}

func TestProcessor_RegisterStamping(t *testing.T) {
	registry := NewRegistry()
	RegisterDefaults(registry)

	t.Run("reopened namespace keeps its first sighting without a docstring", func(t *testing.T) {
		processor, objects := newTestProcessor(registry)
		processor.SetFile("a.rb")
		processor.ParseAll(parse("module Foo\nend"))
		processor.SetFile("b.rb")
		processor.ParseAll(parse("module Foo\nend"))

		obj, ok := objects.Lookup("Foo")
		require.True(t, ok)
		assert.Equal(t, "a.rb", obj.Base().File)
	})

	t.Run("docstring-carrying reopening wins the namespace provenance", func(t *testing.T) {
		processor, objects := newTestProcessor(registry)
		processor.SetFile("a.rb")
		processor.ParseAll(parse("module Foo\nend"))
		processor.SetFile("b.rb")
		processor.ParseAll(parse("# The real definition.\nmodule Foo\nend"))

		obj, ok := objects.Lookup("Foo")
		require.True(t, ok)
		assert.Equal(t, "b.rb", obj.Base().File)
		assert.Equal(t, "The real definition.", obj.Base().Docstring)
	})

	t.Run("non-namespace objects are stamped on every registration", func(t *testing.T) {
		processor, objects := newTestProcessor(registry)
		processor.ParseAll(parse("VERSION = 1"))

		obj, ok := objects.Lookup("VERSION")
		require.True(t, ok)
		assert.Equal(t, "test.rb", obj.Base().File)
		assert.Equal(t, 1, obj.Base().Line)
		assert.NotEmpty(t, obj.Base().Source)
	})
}

func TestProcessor_DynamicFlag(t *testing.T) {
	registry := NewRegistry()
	RegisterDefaults(registry)
	processor, objects := newTestProcessor(registry)

	processor.ParseAll(parse(`class Foo
  CEILING = 20
  def setup
    LIMIT = 10
  end
end`))

	t.Run("object registered inside a method body is dynamic", func(t *testing.T) {
		obj, ok := objects.Lookup("Foo::LIMIT")
		require.True(t, ok)
		assert.True(t, obj.Base().Dynamic)
	})

	t.Run("object registered at namespace level is not", func(t *testing.T) {
		obj, ok := objects.Lookup("Foo::CEILING")
		require.True(t, ok)
		assert.False(t, obj.Base().Dynamic)

		class, ok := objects.Lookup("Foo")
		require.True(t, ok)
		assert.False(t, class.Base().Dynamic)
	})
}

func TestParseBlock_Restore(t *testing.T) {
	run := func(t *testing.T, nested *Descriptor, source string) *Processor {
		registry := NewRegistry()
		registry.Register(&Descriptor{
			Name:  "scoped",
			Match: MatchTokenText("scoped"),
			Process: func(view *ProcessingView) ([]docmodel.Object, error) {
				ns := &docmodel.ModuleObject{BaseObject: docmodel.BaseObject{Name: "Scoped"}}
				view.ParseBlock(BlockOptions{Namespace: ns, Scope: docmodel.ClassScope})
				return nil, nil
			},
		})
		if nested != nil {
			registry.Register(nested)
		}
		processor, _ := newTestProcessor(registry)
		processor.Context().Visibility = docmodel.Private

		processor.ParseAll(parse(source))
		return processor
	}

	assertRestored := func(t *testing.T, processor *Processor) {
		ctx := processor.Context()
		assert.Same(t, processor.Objects().Root(), ctx.Namespace)
		assert.Same(t, processor.Objects().Root(), ctx.Owner, "owner resets to the restored namespace")
		assert.Equal(t, docmodel.Private, ctx.Visibility)
		assert.Equal(t, docmodel.InstanceScope, ctx.Scope)
	}

	t.Run("restores after an empty block", func(t *testing.T) {
		assertRestored(t, run(t, nil, "scoped do\nend"))
	})

	t.Run("restores after a non-empty block", func(t *testing.T) {
		nested := &Descriptor{
			Name:  "mutator",
			Match: MatchTokenText("mutate"),
			Process: func(view *ProcessingView) ([]docmodel.Object, error) {
				view.Context().Visibility = docmodel.Protected
				view.Context().Scope = docmodel.ClassScope
				return nil, nil
			},
		}
		assertRestored(t, run(t, nested, "scoped do\n  mutate\nend"))
	})

	t.Run("restores after a nested handler defect", func(t *testing.T) {
		nested := &Descriptor{
			Name:  "failing",
			Match: MatchTokenText("explode"),
			Process: func(view *ProcessingView) ([]docmodel.Object, error) {
				view.Context().Visibility = docmodel.Public
				return nil, errors.NewHandlerError("NESTED_FAILURE", "nested failure")
			},
		}
		assertRestored(t, run(t, nested, "scoped do\n  explode\nend"))
	})
}
