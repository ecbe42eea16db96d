package docmodel

// Symbol is a symbolic atom extracted from a symbol literal token.
type Symbol string

// Reference is a link to another documentation object. It is either
// resolved, carrying the target object, or unresolved, carrying only the
// path that was written in source. Resolution rewrites the reference in
// place once the real object becomes known.
type Reference struct {
	path   string
	target Object
}

// NewReference creates an unresolved reference to the given path.
func NewReference(path string) *Reference {
	return &Reference{path: path}
}

// ResolvedReference creates a reference that already points at an object.
func ResolvedReference(target Object) *Reference {
	return &Reference{target: target}
}

// Resolved reports whether the reference points at a real object.
func (r *Reference) Resolved() bool { return r.target != nil }

// Target returns the resolved object, or nil while unresolved.
func (r *Reference) Target() Object { return r.target }

// Path returns the target's path when resolved, otherwise the path the
// reference was created with.
func (r *Reference) Path() string {
	if r.target != nil {
		return r.target.Path()
	}
	return r.path
}

// Resolve rewrites the reference to point at the given object.
func (r *Reference) Resolve(target Object) {
	r.target = target
}
