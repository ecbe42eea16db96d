package handler

import (
	"doclens/pkg/docmodel"
)

// IncludeDescriptor handles `include Mod` statements, recording mixin
// references on the current namespace.
func IncludeDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "mixin-include",
		Match:   MatchTokenText("include"),
		Process: processMixin,
	}
}

// ExtendDescriptor handles `extend Mod` statements the same way.
func ExtendDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "mixin-extend",
		Match:   MatchTokenText("extend"),
		Process: processMixin,
	}
}

func processMixin(view *ProcessingView) ([]docmodel.Object, error) {
	names := view.TokvalList(tokensAfterFirst(view.Statement.Tokens), FilterNode)
	if len(names) == 0 {
		return nil, nil
	}

	var refs []*docmodel.Reference
	for _, value := range names {
		name, ok := value.(string)
		if !ok || name == "" {
			continue
		}
		refs = append(refs, docmodel.NewReference(name))
	}
	if len(refs) == 0 {
		return nil, nil
	}

	switch ns := view.Namespace().(type) {
	case *docmodel.ModuleObject:
		ns.Mixins = append(ns.Mixins, refs...)
	case *docmodel.ClassObject:
		ns.Mixins = append(ns.Mixins, refs...)
	default:
		return nil, nil
	}

	// Re-registering the namespace runs the resolver over the new
	// references and keeps its provenance idempotent.
	view.RegisterOne(view.Namespace())
	return nil, nil
}
