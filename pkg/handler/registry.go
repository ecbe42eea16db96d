package handler

import (
	"regexp"

	"doclens/pkg/ast"
	"doclens/pkg/docmodel"
	"doclens/pkg/lexer"
)

// ProcessFunc is a handler's process routine. It receives a view of the
// statement being processed and returns the documentation objects it
// produced, already registered through the view.
type ProcessFunc func(view *ProcessingView) ([]docmodel.Object, error)

// Descriptor describes one registered statement handler: an identity, a
// match rule, and a process routine. A descriptor with a nil Process is a
// programming defect in the plugin layer and fails at invocation time.
type Descriptor struct {
	Name    string
	Match   MatchRule
	Process ProcessFunc
}

type matchKind int

const (
	matchTokenType matchKind = iota
	matchTokenText
	matchPattern
)

// MatchRule decides whether a descriptor applies to a statement. It is one
// of: leading-token-kind equality, leading-token-text equality, or a
// pattern match against the statement's full rendered text.
type MatchRule struct {
	kind      matchKind
	tokenType lexer.TokenType
	text      string
	pattern   *regexp.Regexp
}

// MatchTokenType matches statements whose first token has the given type.
func MatchTokenType(tokenType lexer.TokenType) MatchRule {
	return MatchRule{kind: matchTokenType, tokenType: tokenType}
}

// MatchTokenText matches statements whose first token's text equals the
// given text exactly (case-sensitive).
func MatchTokenText(text string) MatchRule {
	return MatchRule{kind: matchTokenText, text: text}
}

// MatchPattern matches statements whose rendered text matches the pattern
// anywhere in the string.
func MatchPattern(pattern *regexp.Regexp) MatchRule {
	return MatchRule{kind: matchPattern, pattern: pattern}
}

// Matches reports whether the rule applies to the statement.
func (m MatchRule) Matches(stmt *ast.Statement) bool {
	switch m.kind {
	case matchTokenType:
		return stmt.First().Type == m.tokenType
	case matchTokenText:
		return stmt.First().Text == m.text
	case matchPattern:
		if m.pattern == nil {
			return false
		}
		return m.pattern.MatchString(stmt.Text())
	default:
		return false
	}
}

// Registry is an explicit, ordered table of handler descriptors. Handlers
// are registered by an explicit call at startup rather than implicitly on
// definition, and Clear supports test isolation.
type Registry struct {
	descriptors []*Descriptor
	disabled    map[string]bool
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		disabled: make(map[string]bool),
	}
}

// Register appends a descriptor. Registration order is dispatch order.
func (r *Registry) Register(descriptor *Descriptor) {
	r.descriptors = append(r.descriptors, descriptor)
}

// Disable excludes a handler by name from selection. Used by configuration
// to switch off individual handlers without unregistering them.
func (r *Registry) Disable(name string) {
	r.disabled[name] = true
}

// Clear removes every descriptor and disable mark.
func (r *Registry) Clear() {
	r.descriptors = nil
	r.disabled = make(map[string]bool)
}

// Handlers returns the registered descriptors in registration order.
func (r *Registry) Handlers() []*Descriptor {
	return r.descriptors
}

// Select returns every enabled descriptor matching the statement, in
// registration order. Multiple handlers may match the same statement; all
// of them run.
func (r *Registry) Select(stmt *ast.Statement) []*Descriptor {
	var matched []*Descriptor
	for _, descriptor := range r.descriptors {
		if r.disabled[descriptor.Name] {
			continue
		}
		if descriptor.Match.Matches(stmt) {
			matched = append(matched, descriptor)
		}
	}
	return matched
}
