package handler

import (
	"regexp"

	"doclens/pkg/docmodel"
)

var attributePattern = regexp.MustCompile(`^\s*attr(_reader|_writer|_accessor)?\b`)

// AttributeDescriptor handles attr_reader/attr_writer/attr_accessor
// statements. The declared names form a literal list restricted to the
// attribute kinds (symbols and plain strings).
func AttributeDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "attribute",
		Match:   MatchPattern(attributePattern),
		Process: processAttribute,
	}
}

func processAttribute(view *ProcessingView) ([]docmodel.Object, error) {
	first := view.Statement.First()

	readable := false
	writable := false
	switch first.Text {
	case "attr_reader":
		readable = true
	case "attr_writer":
		writable = true
	case "attr_accessor", "attr":
		readable = true
		writable = true
	default:
		return nil, nil
	}

	names := view.TokvalList(tokensAfterFirst(view.Statement.Tokens), FilterAttribute)

	var produced []docmodel.Object
	for _, value := range names {
		name := symbolName(value)
		if name == "" {
			continue
		}
		attribute := &docmodel.AttributeObject{
			BaseObject: docmodel.BaseObject{
				Name:      name,
				Namespace: docmodel.ResolvedReference(view.Namespace()),
			},
			Visibility: view.Visibility(),
			Scope:      view.Scope(),
			Readable:   readable,
			Writable:   writable,
		}
		produced = append(produced, attribute)
	}

	view.Register(produced...)
	return produced, nil
}
