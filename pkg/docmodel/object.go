// Package docmodel defines the documentation-object graph produced by the
// statement-processing layer: modules, classes, methods, attributes and
// constants, plus the reference type used for cross-links that may point at
// objects that have not been parsed yet.
package docmodel

// Visibility is the access level a method or attribute is declared with.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Scope distinguishes instance-level from class-level definitions.
type Scope int

const (
	InstanceScope Scope = iota
	ClassScope
)

func (s Scope) String() string {
	switch s {
	case InstanceScope:
		return "instance"
	case ClassScope:
		return "class"
	default:
		return "unknown"
	}
}

// Object is implemented by every documentation object.
type Object interface {
	// Base exposes the provenance fields shared by all object kinds.
	Base() *BaseObject

	// Path returns the fully qualified path of the object.
	Path() string

	// Kind returns a short tag for the object kind ("module", "class", ...).
	Kind() string
}

// ReferenceHolder is implemented by objects that carry cross-references
// which the resolver must validate before registration.
type ReferenceHolder interface {
	References() []*Reference
}

// BaseObject holds the fields common to every documentation object.
type BaseObject struct {
	Name      string
	Namespace *Reference // lexical container; nil only for the root
	File      string
	Line      int
	Docstring string
	Source    string
	Dynamic   bool
}

// Base implements Object.
func (b *BaseObject) Base() *BaseObject { return b }

// References implements ReferenceHolder with the namespace link only.
// Kinds with additional links override this.
func (b *BaseObject) References() []*Reference {
	if b.Namespace == nil {
		return nil
	}
	return []*Reference{b.Namespace}
}

// pathWith joins the namespace path and the object name with the given
// separator. The root namespace contributes no prefix.
func (b *BaseObject) pathWith(sep string) string {
	if b.Namespace == nil {
		return b.Name
	}
	prefix := b.Namespace.Path()
	if prefix == "" {
		return b.Name
	}
	return prefix + sep + b.Name
}

// ModuleObject is a documentable module namespace.
type ModuleObject struct {
	BaseObject
	Mixins []*Reference
}

func (m *ModuleObject) Kind() string { return "module" }

func (m *ModuleObject) Path() string { return m.pathWith("::") }

func (m *ModuleObject) References() []*Reference {
	refs := m.BaseObject.References()
	refs = append(refs, m.Mixins...)
	return refs
}

// ClassObject is a documentable class namespace with an optional
// superclass link.
type ClassObject struct {
	BaseObject
	Superclass *Reference
	Mixins     []*Reference
}

func (c *ClassObject) Kind() string { return "class" }

func (c *ClassObject) Path() string { return c.pathWith("::") }

func (c *ClassObject) References() []*Reference {
	refs := c.BaseObject.References()
	if c.Superclass != nil {
		refs = append(refs, c.Superclass)
	}
	refs = append(refs, c.Mixins...)
	return refs
}

// MethodObject is a single method definition.
type MethodObject struct {
	BaseObject
	Visibility Visibility
	Scope      Scope
	Parameters []string
}

func (m *MethodObject) Kind() string { return "method" }

// Path uses "#" for instance methods and "." for class-level methods.
func (m *MethodObject) Path() string {
	if m.Scope == ClassScope {
		return m.pathWith(".")
	}
	return m.pathWith("#")
}

// AttributeObject is a declared attribute (reader, writer or both).
type AttributeObject struct {
	BaseObject
	Visibility Visibility
	Scope      Scope
	Readable   bool
	Writable   bool
}

func (a *AttributeObject) Kind() string { return "attribute" }

func (a *AttributeObject) Path() string { return a.pathWith("#") }

// ConstantObject is a constant assignment with its literal right-hand side.
type ConstantObject struct {
	BaseObject
	Value string
}

func (c *ConstantObject) Kind() string { return "constant" }

func (c *ConstantObject) Path() string { return c.pathWith("::") }

// IsNamespace reports whether the object can lexically contain other
// documentation objects.
func IsNamespace(o Object) bool {
	switch o.(type) {
	case *ModuleObject, *ClassObject:
		return true
	default:
		return false
	}
}
