package ledger

import "shapecheck/internal/ast"

// Symbol binds a placeholder to a student construct. ID is the identifier
// the construct resolves to; Node is a non-owning reference into the
// student's tree.
type Symbol struct {
	ID   string
	Node ast.Node
}

func (s Symbol) String() string { return s.ID }

// Line is the source line of the bound node, or 0.
func (s Symbol) Line() int {
	if ast.IsNil(s.Node) {
		return 0
	}
	return s.Node.Line()
}

// SymbolList is the ordered set of symbols bound under one placeholder.
// A (node, id) pair appears at most once; one node may carry several ids
// when function bindings fall back to a shared enclosing call. Scalar accessors read the first symbol, so a
// list with one binding behaves like that binding.
type SymbolList struct {
	items []Symbol
}

func newSymbolList(first Symbol) *SymbolList {
	return &SymbolList{items: []Symbol{first}}
}

// Len reports the number of bindings.
func (l *SymbolList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the i-th binding.
func (l *SymbolList) At(i int) Symbol { return l.items[i] }

// All returns a copy of the bindings in insertion order.
func (l *SymbolList) All() []Symbol {
	if l == nil {
		return nil
	}
	return append([]Symbol(nil), l.items...)
}

// First returns the first binding, or the zero Symbol for an empty list.
func (l *SymbolList) First() Symbol {
	if l.Len() == 0 {
		return Symbol{}
	}
	return l.items[0]
}

func (l *SymbolList) ID() string     { return l.First().ID }
func (l *SymbolList) Node() ast.Node { return l.First().Node }
func (l *SymbolList) Line() int      { return l.First().Line() }

func (l *SymbolList) String() string { return l.ID() }

func (l *SymbolList) has(sym Symbol) bool {
	for _, s := range l.items {
		if s.Node == sym.Node && s.ID == sym.ID {
			return true
		}
	}
	return false
}

// add appends s unless the same node is already bound to the same id.
func (l *SymbolList) add(s Symbol) {
	if !l.has(s) {
		l.items = append(l.items, s)
	}
}

// disagrees reports whether any binding resolves to an identifier other
// than id.
func (l *SymbolList) disagrees(id string) bool {
	for _, s := range l.items {
		if s.ID != id {
			return true
		}
	}
	return false
}
