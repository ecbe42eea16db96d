package handler

import (
	"regexp"

	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

var visibilityPattern = regexp.MustCompile(`^\s*(public|protected|private)\b`)

// VisibilityDescriptor handles visibility statements. The bare form
// changes the traversal context for the rest of the block; the argument
// form retargets already-registered methods by name.
func VisibilityDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "visibility",
		Match:   MatchPattern(visibilityPattern),
		Process: processVisibility,
	}
}

func processVisibility(view *ProcessingView) ([]docmodel.Object, error) {
	var visibility docmodel.Visibility
	switch view.Statement.First().Text {
	case "public":
		visibility = docmodel.Public
	case "protected":
		visibility = docmodel.Protected
	case "private":
		visibility = docmodel.Private
	default:
		return nil, nil
	}

	names := view.TokvalList(tokensAfterFirst(view.Statement.Tokens),
		FilterIdentifier, lexer.TokenSymbol)

	if len(names) == 0 {
		view.Context().Visibility = visibility
		return nil, nil
	}

	var changed []docmodel.Object
	for _, value := range names {
		name := symbolName(value)
		if name == "" {
			continue
		}
		if obj, ok := view.Objects().Lookup(methodPath(view.Namespace(), name)); ok {
			if method, ok := obj.(*docmodel.MethodObject); ok {
				method.Visibility = visibility
				changed = append(changed, method)
			}
		}
	}
	return changed, nil
}

func methodPath(ns docmodel.Object, name string) string {
	prefix := ns.Path()
	if prefix == "" {
		return name
	}
	return prefix + "#" + name
}
