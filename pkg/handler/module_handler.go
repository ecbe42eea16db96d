package handler

import (
	"doclens/pkg/docmodel"
)

// ModuleDescriptor handles `module Name` statements: it finds or creates
// the module object and parses the body under it.
func ModuleDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "module",
		Match:   MatchTokenText("module"),
		Process: processModule,
	}
}

func processModule(view *ProcessingView) ([]docmodel.Object, error) {
	toks := meaningfulTokens(view.Statement.Tokens)
	name, _ := constantPath(toks, 1)
	if name == "" {
		return nil, nil
	}

	module := ensureModule(view, name)
	view.RegisterOne(module)
	view.ParseBlock(BlockOptions{Namespace: module, Scope: docmodel.InstanceScope})

	return []docmodel.Object{module}, nil
}

// ensureModule reuses an already-registered module when the statement
// reopens one, otherwise creates it inside the current namespace.
func ensureModule(view *ProcessingView, name string) *docmodel.ModuleObject {
	if existing, ok := view.Objects().LookupFrom(view.Namespace(), name); ok {
		if module, ok := existing.(*docmodel.ModuleObject); ok {
			return module
		}
	}
	return &docmodel.ModuleObject{
		BaseObject: docmodel.BaseObject{
			Name:      name,
			Namespace: docmodel.ResolvedReference(view.Namespace()),
		},
	}
}
