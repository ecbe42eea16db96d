package docmodel

// builtinNames are well-known core constructs. An unresolved reference to
// one of these is expected (the core library is never parsed), so the
// resolver suppresses its load-order diagnostic for them.
var builtinNames = map[string]bool{
	"Object":        true,
	"BasicObject":   true,
	"Module":        true,
	"Class":         true,
	"Kernel":        true,
	"Comparable":    true,
	"Enumerable":    true,
	"Struct":        true,
	"String":        true,
	"Symbol":        true,
	"Integer":       true,
	"Float":         true,
	"Numeric":       true,
	"Array":         true,
	"Hash":          true,
	"Range":         true,
	"Regexp":        true,
	"Proc":          true,
	"Method":        true,
	"Exception":     true,
	"StandardError": true,
	"RuntimeError":  true,
	"ArgumentError": true,
	"TypeError":     true,
	"IO":            true,
	"File":          true,
	"Time":          true,
	"Thread":        true,
	"Mutex":         true,
	"NilClass":      true,
	"TrueClass":     true,
	"FalseClass":    true,
}

// Builtin reports whether the name denotes a well-known core construct.
// The namespace-qualified form is checked against its last segment.
func Builtin(name string) bool {
	return builtinNames[name]
}

// AddBuiltin registers an extra name to treat as a core construct. Used by
// configuration to extend the set for project-specific preludes.
func AddBuiltin(name string) {
	builtinNames[name] = true
}
