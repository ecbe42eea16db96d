package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/pkg/docmodel"
)

func processSource(t *testing.T, source string) *docmodel.Registry {
	t.Helper()
	registry := NewRegistry()
	RegisterDefaults(registry)
	processor, objects := newTestProcessor(registry)
	processor.ParseAll(parse(source))
	return objects
}

const widgetSource = `class Base
end

# Core container.
module Acme
  VERSION = '1.0'

  # A widget.
  class Widget < Base
    include Comparable

    attr_accessor :name, :size
    attr_reader :id

    # Builds an empty widget.
    def initialize(name, size = 0)
      @name = name
    end

    def self.build(name)
    end

    def ==(other)
    end

    private

    def secret
    end

    def helper
    end
    public :helper
  end
end`

func TestHandlers_Namespaces(t *testing.T) {
	objects := processSource(t, widgetSource)

	t.Run("module with docstring", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme")
		require.True(t, ok)
		assert.Equal(t, "module", obj.Kind())
		assert.Equal(t, "Core container.", obj.Base().Docstring)
	})

	t.Run("nested class with resolved superclass", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme::Widget")
		require.True(t, ok)
		class, ok := obj.(*docmodel.ClassObject)
		require.True(t, ok)
		assert.Equal(t, "A widget.", class.Docstring)

		require.NotNil(t, class.Superclass)
		require.True(t, class.Superclass.Resolved())
		base, _ := objects.Lookup("Base")
		assert.Same(t, docmodel.Object(base), class.Superclass.Target())
	})

	t.Run("include records a mixin reference", func(t *testing.T) {
		obj, _ := objects.Lookup("Acme::Widget")
		class := obj.(*docmodel.ClassObject)
		require.Len(t, class.Mixins, 1)
		assert.Equal(t, "Comparable", class.Mixins[0].Path())
		assert.True(t, class.Mixins[0].Resolved(), "builtin mixin resolves speculatively")
	})
}

func TestHandlers_Constants(t *testing.T) {
	objects := processSource(t, widgetSource)

	obj, ok := objects.Lookup("Acme::VERSION")
	require.True(t, ok)
	constant, ok := obj.(*docmodel.ConstantObject)
	require.True(t, ok)
	assert.Equal(t, "'1.0'", constant.Value)

	t.Run("comparison is not an assignment", func(t *testing.T) {
		other := processSource(t, "STATE == :ready")
		_, ok := other.Lookup("STATE")
		assert.False(t, ok)
	})
}

func TestHandlers_Methods(t *testing.T) {
	objects := processSource(t, widgetSource)

	t.Run("instance method with parameters", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme::Widget#initialize")
		require.True(t, ok)
		method := obj.(*docmodel.MethodObject)
		assert.Equal(t, docmodel.InstanceScope, method.Scope)
		assert.Equal(t, docmodel.Public, method.Visibility)
		assert.Equal(t, []string{"name", "size"}, method.Parameters)
		assert.Equal(t, "Builds an empty widget.", method.Docstring)
	})

	t.Run("self method registers at class scope", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme::Widget.build")
		require.True(t, ok)
		method := obj.(*docmodel.MethodObject)
		assert.Equal(t, docmodel.ClassScope, method.Scope)
	})

	t.Run("operator method keeps its full name", func(t *testing.T) {
		_, ok := objects.Lookup("Acme::Widget#==")
		assert.True(t, ok)
	})
}

func TestHandlers_Visibility(t *testing.T) {
	objects := processSource(t, widgetSource)

	t.Run("bare private applies to following definitions", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme::Widget#secret")
		require.True(t, ok)
		assert.Equal(t, docmodel.Private, obj.(*docmodel.MethodObject).Visibility)
	})

	t.Run("argument form retargets an existing method", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme::Widget#helper")
		require.True(t, ok)
		assert.Equal(t, docmodel.Public, obj.(*docmodel.MethodObject).Visibility)
	})

	t.Run("visibility resets to public in a new namespace body", func(t *testing.T) {
		other := processSource(t, `class Outer
  private

  class Inner
    def visible
    end
  end
end`)
		obj, ok := other.Lookup("Outer::Inner#visible")
		require.True(t, ok)
		assert.Equal(t, docmodel.Public, obj.(*docmodel.MethodObject).Visibility)
	})
}

func TestHandlers_Attributes(t *testing.T) {
	objects := processSource(t, widgetSource)

	t.Run("accessor declares readable and writable", func(t *testing.T) {
		for _, name := range []string{"name", "size"} {
			obj, ok := objects.Lookup("Acme::Widget#" + name)
			require.True(t, ok, name)
			attribute := obj.(*docmodel.AttributeObject)
			assert.True(t, attribute.Readable)
			assert.True(t, attribute.Writable)
		}
	})

	t.Run("reader declares readable only", func(t *testing.T) {
		obj, ok := objects.Lookup("Acme::Widget#id")
		require.True(t, ok)
		attribute := obj.(*docmodel.AttributeObject)
		assert.True(t, attribute.Readable)
		assert.False(t, attribute.Writable)
	})
}

func TestHandlers_ReopenedNamespace(t *testing.T) {
	objects := processSource(t, `module Acme
  class Widget
  end
end

module Acme
  class Widget
    def extra
    end
  end
end`)

	assert.Equal(t, 3, objects.Count(), "reopening does not duplicate namespaces")
	_, ok := objects.Lookup("Acme::Widget#extra")
	assert.True(t, ok)
}
