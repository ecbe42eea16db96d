package handler

import (
	"fmt"
	"regexp"

	lua "github.com/yuin/gopher-lua"

	"doclens/errors"
	"doclens/pkg/docmodel"
)

// LuaDescriptor builds a statement handler from a Lua script, so projects
// can document their own conventions without recompiling. The script must
// set a global `match` string, compiled as a pattern against the
// statement's rendered text, and a global `process(stmt)` function. The
// stmt argument is a table with `text`, `line` and `docstring` fields;
// `process` returns an array of tables, each with a `kind` field of
// "module", "class", "method" or "constant" and a `name` field.
func LuaDescriptor(name, script string) (*Descriptor, error) {
	state := lua.NewState()

	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, errors.WrapError(err, "LUA_SCRIPT_FAILED",
			fmt.Sprintf("lua handler '%s' failed to load", name))
	}

	matchValue := state.GetGlobal("match")
	matchStr, ok := matchValue.(lua.LString)
	if !ok {
		state.Close()
		return nil, errors.NewUserError("LUA_MATCH_MISSING",
			fmt.Sprintf("lua handler '%s' defines no match pattern", name))
	}
	pattern, err := regexp.Compile(string(matchStr))
	if err != nil {
		state.Close()
		return nil, errors.WrapError(err, "LUA_MATCH_INVALID",
			fmt.Sprintf("lua handler '%s' has an invalid match pattern", name))
	}

	processFn, ok := state.GetGlobal("process").(*lua.LFunction)
	if !ok {
		state.Close()
		return nil, errors.NewUserError("LUA_PROCESS_MISSING",
			fmt.Sprintf("lua handler '%s' defines no process function", name))
	}

	return &Descriptor{
		Name:  name,
		Match: MatchPattern(pattern),
		Process: func(view *ProcessingView) ([]docmodel.Object, error) {
			return runLuaProcess(state, processFn, view)
		},
	}, nil
}

func runLuaProcess(state *lua.LState, fn *lua.LFunction, view *ProcessingView) ([]docmodel.Object, error) {
	stmt := state.NewTable()
	state.SetField(stmt, "text", lua.LString(view.Statement.Text()))
	state.SetField(stmt, "line", lua.LNumber(view.Statement.Line()))
	state.SetField(stmt, "docstring", lua.LString(view.Statement.Docstring))

	if err := state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, stmt); err != nil {
		return nil, errors.WrapError(err, "LUA_PROCESS_FAILED", "lua process function failed")
	}

	result := state.Get(-1)
	state.Pop(1)

	table, ok := result.(*lua.LTable)
	if !ok {
		return nil, nil
	}

	var produced []docmodel.Object
	table.ForEach(func(_, item lua.LValue) {
		entry, ok := item.(*lua.LTable)
		if !ok {
			return
		}
		obj := luaObject(state, entry, view)
		if obj != nil {
			produced = append(produced, obj)
		}
	})

	view.Register(produced...)
	return produced, nil
}

func luaObject(state *lua.LState, entry *lua.LTable, view *ProcessingView) docmodel.Object {
	name := lua.LVAsString(state.GetField(entry, "name"))
	if name == "" {
		return nil
	}
	base := docmodel.BaseObject{
		Name:      name,
		Namespace: docmodel.ResolvedReference(view.Namespace()),
		Docstring: lua.LVAsString(state.GetField(entry, "docstring")),
	}

	switch lua.LVAsString(state.GetField(entry, "kind")) {
	case "module":
		return &docmodel.ModuleObject{BaseObject: base}
	case "class":
		return &docmodel.ClassObject{BaseObject: base}
	case "constant":
		return &docmodel.ConstantObject{
			BaseObject: base,
			Value:      lua.LVAsString(state.GetField(entry, "value")),
		}
	case "method", "":
		return &docmodel.MethodObject{
			BaseObject: base,
			Visibility: view.Visibility(),
			Scope:      view.Scope(),
		}
	default:
		return nil
	}
}
