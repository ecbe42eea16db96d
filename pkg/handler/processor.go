package handler

import (
	"fmt"

	"doclens/errors"
	"doclens/logging"
	"doclens/pkg/ast"
	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// Processor orchestrates statement processing: it selects matching
// handlers, invokes them, registers the documentation objects they
// produce, and recurses into nested blocks on request.
type Processor struct {
	registry *Registry
	objects  *docmodel.Registry
	resolver *Resolver
	ctx      *Context
	log      logging.Logger
	file     string
}

// NewProcessor creates a processor over the given handler registry and
// object registry. The traversal context starts at the object registry's
// root namespace.
func NewProcessor(registry *Registry, objects *docmodel.Registry, resolver *Resolver, log logging.Logger) *Processor {
	return &Processor{
		registry: registry,
		objects:  objects,
		resolver: resolver,
		ctx:      NewContext(objects.Root()),
		log:      log.WithComponent("processor"),
	}
}

// SetFile records the identity of the file whose statements are being
// processed. It is stamped onto every produced object.
func (p *Processor) SetFile(file string) {
	p.file = file
}

// File returns the current file identity.
func (p *Processor) File() string { return p.file }

// Context returns the live traversal context.
func (p *Processor) Context() *Context { return p.ctx }

// Objects returns the object registry the processor registers into.
func (p *Processor) Objects() *docmodel.Registry { return p.objects }

// ParseAll processes a statement sequence to completion. Handler-defect
// failures are logged and absorbed; the traversal continues with the next
// statement.
func (p *Processor) ParseAll(statements []*ast.Statement) {
	for _, stmt := range statements {
		if _, err := p.Process(stmt); err != nil {
			p.log.Error("statement handler failed",
				logging.F("error", err.Error()),
				logging.F("line", stmt.Line()),
			)
		}
	}
}

// Process runs every matching handler against the statement and returns
// the documentation objects produced. A statement no handler matches is
// silently skipped. A defective handler aborts only its own processing of
// this statement; remaining matching handlers still run, and the first
// defect is returned.
func (p *Processor) Process(stmt *ast.Statement) ([]docmodel.Object, error) {
	matched := p.registry.Select(stmt)
	if len(matched) == 0 {
		return nil, nil
	}

	var produced []docmodel.Object
	var firstErr error

	for _, descriptor := range matched {
		view := &ProcessingView{Statement: stmt, processor: p}
		objects, err := p.invoke(descriptor, view)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		produced = append(produced, objects...)
	}

	return produced, firstErr
}

// invoke runs one handler, converting nil process routines and panics into
// handler errors so a plugin defect cannot take down the traversal.
func (p *Processor) invoke(descriptor *Descriptor, view *ProcessingView) (objects []docmodel.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewHandlerError("HANDLER_PANIC",
				fmt.Sprintf("handler '%s' panicked: %v", descriptor.Name, r)).
				WithPosition(p.file, view.Statement.Line())
		}
	}()

	if descriptor.Process == nil {
		return nil, errors.NewHandlerError("HANDLER_NOT_IMPLEMENTED",
			fmt.Sprintf("handler '%s' has no process routine", descriptor.Name)).
			WithPosition(p.file, view.Statement.Line())
	}

	return descriptor.Process(view)
}

// registerObject runs reference resolution and provenance stamping for one
// produced object, then stores it in the object registry.
func (p *Processor) registerObject(stmt *ast.Statement, obj docmodel.Object) {
	p.resolver.Resolve(obj, p.file, stmt.Line())

	base := obj.Base()
	if docmodel.IsNamespace(obj) {
		// Namespaces may be reopened in many files; the statement that
		// carries the docstring wins, otherwise the first sighting sticks.
		if stmt.Docstring != "" || base.File == "" {
			base.File = p.file
			base.Line = stmt.Line()
		}
	} else {
		base.File = p.file
		base.Line = stmt.Line()
		if base.Source == "" {
			base.Source = stmt.Source()
		}
	}

	if stmt.Docstring != "" {
		base.Docstring = stmt.Docstring
	}

	base.Dynamic = p.ctx.Owner != p.ctx.Namespace

	p.objects.Register(obj)
}

// ProcessingView is the per-invocation surface a handler works against:
// the statement, the current traversal state, and the register and
// parse-block operations.
type ProcessingView struct {
	Statement *ast.Statement
	processor *Processor
}

// Context returns the live traversal context.
func (v *ProcessingView) Context() *Context { return v.processor.ctx }

// Namespace returns the current namespace object.
func (v *ProcessingView) Namespace() docmodel.Object { return v.processor.ctx.Namespace }

// Owner returns the current owner object.
func (v *ProcessingView) Owner() docmodel.Object { return v.processor.ctx.Owner }

// Visibility returns the current declared visibility.
func (v *ProcessingView) Visibility() docmodel.Visibility { return v.processor.ctx.Visibility }

// Scope returns the current definition scope.
func (v *ProcessingView) Scope() docmodel.Scope { return v.processor.ctx.Scope }

// File returns the identity of the file being processed.
func (v *ProcessingView) File() string { return v.processor.file }

// Objects returns the object registry, for lookups of already-registered
// documentation objects.
func (v *ProcessingView) Objects() *docmodel.Registry { return v.processor.objects }

// Register resolves, stamps and stores the produced objects, returning
// them unchanged so a handler can chain the call into its return value.
func (v *ProcessingView) Register(objects ...docmodel.Object) []docmodel.Object {
	for _, obj := range objects {
		v.processor.registerObject(v.Statement, obj)
	}
	return objects
}

// RegisterOne is Register for a single object.
func (v *ProcessingView) RegisterOne(obj docmodel.Object) docmodel.Object {
	v.processor.registerObject(v.Statement, obj)
	return obj
}

// Tokval extracts a literal value from one token of the statement.
func (v *ProcessingView) Tokval(tok lexer.Token, accepted ...interface{}) (interface{}, bool) {
	return Tokval(tok, accepted...)
}

// TokvalList extracts an ordered literal list from a token region of the
// statement.
func (v *ProcessingView) TokvalList(tokens []lexer.Token, accepted ...interface{}) []interface{} {
	return TokvalList(tokens, accepted...)
}

// BlockOptions direct ParseBlock. A non-nil Namespace switches the
// traversal into the supplied namespace with public visibility and the
// given scope, restored afterwards. Owner overrides the container for
// bodies that are not namespaces (method bodies).
type BlockOptions struct {
	Namespace docmodel.Object
	Scope     docmodel.Scope
	Owner     docmodel.Object
}

// ParseBlock recursively processes the statement's nested block under an
// adjusted context. The save/restore around the recursion is unconditional
// on every exit path.
func (v *ProcessingView) ParseBlock(opts BlockOptions) {
	p := v.processor

	if opts.Namespace != nil {
		frame := p.ctx.save()
		p.ctx.Namespace = opts.Namespace
		p.ctx.Visibility = docmodel.Public
		p.ctx.Scope = opts.Scope
		defer p.ctx.restore(frame)
	}

	if opts.Owner != nil {
		p.ctx.Owner = opts.Owner
	} else {
		p.ctx.Owner = p.ctx.Namespace
	}

	if len(v.Statement.Block) > 0 {
		p.ParseAll(v.Statement.Block)
	}
}
