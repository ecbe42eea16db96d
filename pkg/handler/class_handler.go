package handler

import (
	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// ClassDescriptor handles `class Name < Superclass` statements.
func ClassDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "class",
		Match:   MatchTokenText("class"),
		Process: processClass,
	}
}

func processClass(view *ProcessingView) ([]docmodel.Object, error) {
	toks := meaningfulTokens(view.Statement.Tokens)
	name, next := constantPath(toks, 1)
	if name == "" {
		return nil, nil
	}

	class := ensureClass(view, name)

	// Optional superclass part. The reference starts unresolved; the
	// resolver deals with it at registration.
	if next < len(toks) && toks[next].Type == lexer.TokenOp && toks[next].Text == "<" {
		superName, _ := constantPath(toks, next+1)
		if superName != "" && class.Superclass == nil {
			class.Superclass = docmodel.NewReference(superName)
		}
	}

	view.RegisterOne(class)
	view.ParseBlock(BlockOptions{Namespace: class, Scope: docmodel.InstanceScope})

	return []docmodel.Object{class}, nil
}

func ensureClass(view *ProcessingView, name string) *docmodel.ClassObject {
	if existing, ok := view.Objects().LookupFrom(view.Namespace(), name); ok {
		if class, ok := existing.(*docmodel.ClassObject); ok {
			return class
		}
	}
	return &docmodel.ClassObject{
		BaseObject: docmodel.BaseObject{
			Name:      name,
			Namespace: docmodel.ResolvedReference(view.Namespace()),
		},
	}
}
