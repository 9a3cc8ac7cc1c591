// Package ast exposes the read-only view of parse-tree nodes that the binding
// ledger and the type lattice need. Parsing itself happens elsewhere; callers
// adapt their own trees to Node.
package ast

// Node is the accessor surface of a parsed node. Implementations must be
// comparable (pointer types) since nodes are compared by identity.
type Node interface {
	Kind() Kind
	// ID is the identifier the node carries: a variable name for Name nodes,
	// a placeholder id in instructor patterns, the callee for calls.
	ID() string
	// DefName is the declared name of a FunctionDef or ClassDef.
	DefName() string
	// Line is the 1-based source line, or 0 when unknown.
	Line() int
	Parent() Node
}

// IsNil reports whether n is nil or wraps a nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	if s, ok := n.(*Syntax); ok && s == nil {
		return true
	}
	return false
}

// Identifier returns the textual identifier a binding to n resolves to: the
// declared name for definitions, otherwise the node's id.
func Identifier(n Node) string {
	if IsNil(n) {
		return ""
	}
	switch n.Kind() {
	case KindFunctionDef, KindClassDef:
		return n.DefName()
	default:
		return n.ID()
	}
}
