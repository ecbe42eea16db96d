package handler

// RegisterDefaults populates a registry with the built-in statement
// handlers in their dispatch order. Callers may register additional
// handlers before or after; selection order is registration order.
func RegisterDefaults(registry *Registry) {
	registry.Register(ModuleDescriptor())
	registry.Register(ClassDescriptor())
	registry.Register(MethodDescriptor())
	registry.Register(AttributeDescriptor())
	registry.Register(VisibilityDescriptor())
	registry.Register(ConstantDescriptor())
	registry.Register(IncludeDescriptor())
	registry.Register(ExtendDescriptor())
}
