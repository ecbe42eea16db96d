package handler

import (
	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// MethodDescriptor handles `def name(params)` statements, both instance
// and `def self.name` class-level forms.
func MethodDescriptor() *Descriptor {
	return &Descriptor{
		Name:    "method",
		Match:   MatchTokenText("def"),
		Process: processMethod,
	}
}

func processMethod(view *ProcessingView) ([]docmodel.Object, error) {
	toks := meaningfulTokens(view.Statement.Tokens)
	if len(toks) < 2 {
		return nil, nil
	}

	scope := view.Scope()
	i := 1
	if toks[i].Type == lexer.TokenSelf {
		scope = docmodel.ClassScope
		i++
		if i < len(toks) && toks[i].Type == lexer.TokenOp && toks[i].Text == "." {
			i++
		}
	}
	if i >= len(toks) {
		return nil, nil
	}

	name := toks[i].Text
	switch toks[i].Type {
	case lexer.TokenIdentifier, lexer.TokenMethodIdent, lexer.TokenConstant:
	case lexer.TokenOp:
		// Operator methods (==, <=>, !) arrive as runs of OP tokens.
		for i+1 < len(toks) && toks[i+1].Type == lexer.TokenOp {
			i++
			name += toks[i].Text
		}
	default:
		return nil, nil
	}

	method := &docmodel.MethodObject{
		BaseObject: docmodel.BaseObject{
			Name:      name,
			Namespace: docmodel.ResolvedReference(view.Namespace()),
		},
		Visibility: view.Visibility(),
		Scope:      scope,
		Parameters: methodParameters(toks[i+1:]),
	}

	view.RegisterOne(method)

	// The body is not a namespace: anything declared inside it is owned by
	// the method and registers as dynamic.
	view.ParseBlock(BlockOptions{Owner: method, Scope: scope})

	return []docmodel.Object{method}, nil
}

// methodParameters collects the parameter names of a definition line. It
// reads identifiers until the parameter region closes, skipping default
// values and modifiers.
func methodParameters(toks []lexer.Token) []string {
	var params []string
	depth := 0
	skipValue := false

	for _, tok := range toks {
		switch tok.Type {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth <= 0 {
				return params
			}
		case lexer.TokenComma:
			if depth <= 1 {
				skipValue = false
			}
		case lexer.TokenOp:
			if tok.Text == "=" {
				skipValue = true
			}
		case lexer.TokenIdentifier, lexer.TokenMethodIdent:
			if !skipValue && depth <= 1 {
				params = append(params, tok.Text)
			}
		case lexer.TokenKeyword, lexer.TokenComment:
			return params
		}
	}
	return params
}
