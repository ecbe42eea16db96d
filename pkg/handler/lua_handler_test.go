package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/errors"
	"doclens/pkg/docmodel"
)

const dslHandlerScript = `
match = "^\\s*setting\\b"

function process(stmt)
  local name = string.match(stmt.text, "setting%s+:(%w+)")
  if name == nil then
    return {}
  end
  return {
    { kind = "method", name = name, docstring = stmt.docstring },
  }
end
`

func TestLuaDescriptor(t *testing.T) {
	t.Run("script-defined handler produces registered objects", func(t *testing.T) {
		descriptor, err := LuaDescriptor("setting", dslHandlerScript)
		require.NoError(t, err)

		registry := NewRegistry()
		registry.Register(descriptor)
		processor, objects := newTestProcessor(registry)

		processor.ParseAll(parse("# Timeout in seconds.\nsetting :timeout"))

		obj, ok := objects.Lookup("timeout")
		require.True(t, ok)
		method, ok := obj.(*docmodel.MethodObject)
		require.True(t, ok)
		assert.Equal(t, "Timeout in seconds.", method.Docstring)
	})

	t.Run("non-matching statement never reaches the script", func(t *testing.T) {
		descriptor, err := LuaDescriptor("setting", dslHandlerScript)
		require.NoError(t, err)

		registry := NewRegistry()
		registry.Register(descriptor)
		processor, objects := newTestProcessor(registry)

		processor.ParseAll(parse("option :timeout"))
		assert.Zero(t, objects.Count())
	})

	t.Run("script without a match pattern is rejected", func(t *testing.T) {
		_, err := LuaDescriptor("broken", `function process(stmt) return {} end`)
		require.Error(t, err)
		procErr, ok := errors.AsProcessingError(err)
		require.True(t, ok)
		assert.Equal(t, "LUA_MATCH_MISSING", procErr.Code)
	})

	t.Run("script without a process function is rejected", func(t *testing.T) {
		_, err := LuaDescriptor("broken", `match = "^x"`)
		require.Error(t, err)
		procErr, ok := errors.AsProcessingError(err)
		require.True(t, ok)
		assert.Equal(t, "LUA_PROCESS_MISSING", procErr.Code)
	})

	t.Run("script that fails to load is rejected", func(t *testing.T) {
		_, err := LuaDescriptor("broken", `this is not lua`)
		require.Error(t, err)
		procErr, ok := errors.AsProcessingError(err)
		require.True(t, ok)
		assert.Equal(t, "LUA_SCRIPT_FAILED", procErr.Code)
	})
}
