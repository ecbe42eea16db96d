package handler

import (
	"strings"

	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// ConstantDescriptor handles `NAME = value` constant assignments at the
// statement level. Statements that merely start with a constant (method
// calls, superclass lines) produce nothing.
func ConstantDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "constant",
		Match:   MatchTokenType(lexer.TokenConstant),
		Process: processConstant,
	}
}

func processConstant(view *ProcessingView) ([]docmodel.Object, error) {
	toks := meaningfulTokens(view.Statement.Tokens)
	if len(toks) < 3 {
		return nil, nil
	}
	if toks[1].Type != lexer.TokenOp || toks[1].Text != "=" {
		return nil, nil
	}
	// Reject comparison operators scanned as two OP tokens (==, =~).
	if toks[2].Type == lexer.TokenOp && (toks[2].Text == "=" || toks[2].Text == "~") {
		return nil, nil
	}

	var value strings.Builder
	for _, tok := range toks[2:] {
		if tok.Type == lexer.TokenComment {
			break
		}
		if value.Len() > 0 {
			value.WriteString(" ")
		}
		value.WriteString(tok.Text)
	}

	constant := &docmodel.ConstantObject{
		BaseObject: docmodel.BaseObject{
			Name:      toks[0].Text,
			Namespace: docmodel.ResolvedReference(view.Namespace()),
		},
		Value: value.String(),
	}

	view.RegisterOne(constant)
	return []docmodel.Object{constant}, nil
}
