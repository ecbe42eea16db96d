package handler

import (
	"fmt"
	"strings"

	"doclens/logging"
	"doclens/pkg/docmodel"
)

// maxResolveAttempts bounds load-order recovery per unresolved reference.
const maxResolveAttempts = 3

// Resolver performs load-order recovery for references held by an object
// about to be registered. Recovery is best-effort: it never fails the
// caller, and on exhaustion it attaches a speculative placeholder and
// emits a diagnostic unless the reference names a well-known built-in.
type Resolver struct {
	objects     *docmodel.Registry
	log         logging.Logger
	diagnostics bool
}

// NewResolver creates a resolver over the given object registry. The
// diagnostics toggle controls whether load-order warnings are emitted.
func NewResolver(objects *docmodel.Registry, log logging.Logger, diagnostics bool) *Resolver {
	return &Resolver{
		objects:     objects,
		log:         log.WithComponent("resolver"),
		diagnostics: diagnostics,
	}
}

// SetDiagnostics flips the load-order diagnostics toggle.
func (r *Resolver) SetDiagnostics(enabled bool) {
	r.diagnostics = enabled
}

// Resolve validates every reference the object holds. Unresolved
// references are retried a bounded number of times and then resolved
// speculatively. The caller always proceeds; the resulting document graph
// may contain speculative edges.
func (r *Resolver) Resolve(obj docmodel.Object, file string, line int) {
	holder, ok := obj.(docmodel.ReferenceHolder)
	if !ok {
		return
	}

	for _, ref := range holder.References() {
		if ref == nil || ref.Resolved() {
			continue
		}
		r.resolveReference(ref, obj, file, line)
	}
}

func (r *Resolver) resolveReference(ref *docmodel.Reference, obj docmodel.Object, file string, line int) {
	base := r.objects.Root()

	// The object's own namespace, when already resolved, anchors relative
	// lookup for its remaining references.
	var anchor docmodel.Object = base
	if ns := obj.Base().Namespace; ns != nil && ns.Resolved() {
		anchor = ns.Target()
	}

	path := ref.Path()
	for attempt := 0; attempt < maxResolveAttempts; attempt++ {
		if target, ok := r.objects.LookupFrom(anchor, path); ok {
			ref.Resolve(target)
			return
		}
	}

	// Retry exhausted: resolve speculatively. The placeholder is attached
	// at the path the source named so later definitions land on it.
	placeholder := &docmodel.ModuleObject{
		BaseObject: docmodel.BaseObject{
			Name:      path,
			Namespace: docmodel.ResolvedReference(base),
		},
	}
	r.objects.Register(placeholder)
	ref.Resolve(placeholder)

	if docmodel.Builtin(lastSegment(path)) {
		return
	}

	if r.diagnostics {
		r.log.WarnWithPosition(
			fmt.Sprintf("%s %s has not yet been recognized", obj.Kind(), path),
			file, line,
		)
		r.log.WarnWithPosition(
			fmt.Sprintf("if %s is part of the documented source, process the file defining it before %s", path, file),
			file, line,
		)
	}
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "::"); idx >= 0 {
		return path[idx+2:]
	}
	return path
}
