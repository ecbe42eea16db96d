// Package handler implements the statement-processing framework of the
// documentation generator: handler registration and dispatch, the scoped
// traversal context threaded through nested block parsing, registration
// post-processing with forward-reference resolution, and the token-to-value
// extraction used by handler implementations.
package handler

import "doclens/pkg/docmodel"

// Context is the mutable traversal state a handler sees while its
// statement is processed. Exactly one instance is live per processor run;
// ParseBlock saves and restores it around nested block recursion.
//
// Namespace is the nearest enclosing documentable container. Owner tracks
// the finer-grained container and equals Namespace except inside bodies
// that are not themselves namespaces (a method body, a block).
type Context struct {
	Namespace  docmodel.Object
	Owner      docmodel.Object
	Visibility docmodel.Visibility
	Scope      docmodel.Scope
}

// NewContext creates a context rooted at the given namespace with public
// instance defaults.
func NewContext(root docmodel.Object) *Context {
	return &Context{
		Namespace:  root,
		Owner:      root,
		Visibility: docmodel.Public,
		Scope:      docmodel.InstanceScope,
	}
}

// contextFrame is the saved portion of a context around block recursion.
// Owner is deliberately not part of the frame: restoring resets it to the
// restored namespace.
type contextFrame struct {
	namespace  docmodel.Object
	visibility docmodel.Visibility
	scope      docmodel.Scope
}

// save captures the fields ParseBlock must restore.
func (c *Context) save() contextFrame {
	return contextFrame{
		namespace:  c.Namespace,
		visibility: c.Visibility,
		scope:      c.Scope,
	}
}

// restore puts back a saved frame and realigns Owner with the namespace.
func (c *Context) restore(frame contextFrame) {
	c.Namespace = frame.namespace
	c.Visibility = frame.visibility
	c.Scope = frame.scope
	c.Owner = frame.namespace
}
