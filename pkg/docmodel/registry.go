package docmodel

import "sort"

// Registry is the store of every documentation object produced during a
// run, keyed by fully qualified path.
type Registry struct {
	objects map[string]Object
	root    *ModuleObject
}

// NewRegistry creates an empty registry with a fresh root namespace.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Clear()
	return r
}

// Root returns the root namespace object. Its path is the empty string.
func (r *Registry) Root() *ModuleObject { return r.root }

// Register stores the object under its current path. Registering an object
// twice overwrites the earlier entry, which is what repeated partial
// definitions of the same namespace want.
func (r *Registry) Register(obj Object) {
	path := obj.Path()
	if path == "" {
		return
	}
	r.objects[path] = obj
}

// Lookup finds an object by fully qualified path.
func (r *Registry) Lookup(path string) (Object, bool) {
	obj, ok := r.objects[path]
	return obj, ok
}

// LookupFrom resolves a possibly relative path the way constant lookup
// does: it tries the name inside the given namespace, then inside each
// enclosing namespace, and finally as a fully qualified path.
func (r *Registry) LookupFrom(ns Object, path string) (Object, bool) {
	for ns != nil {
		prefix := ns.Path()
		candidate := path
		if prefix != "" {
			candidate = prefix + "::" + path
		}
		if obj, ok := r.objects[candidate]; ok {
			return obj, true
		}
		base := ns.Base()
		if base.Namespace == nil {
			break
		}
		ns = base.Namespace.Target()
	}
	obj, ok := r.objects[path]
	return obj, ok
}

// Paths returns every registered path in sorted order.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.objects))
	for path := range r.objects {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// All returns every registered object in path order.
func (r *Registry) All() []Object {
	objects := make([]Object, 0, len(r.objects))
	for _, path := range r.Paths() {
		objects = append(objects, r.objects[path])
	}
	return objects
}

// Count returns the number of registered objects.
func (r *Registry) Count() int { return len(r.objects) }

// Clear drops every object and resets the root namespace. Used for test
// isolation and between independent runs.
func (r *Registry) Clear() {
	r.objects = make(map[string]Object)
	r.root = &ModuleObject{BaseObject: BaseObject{Name: ""}}
}
