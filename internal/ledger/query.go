package ledger

import (
	"strings"

	"shapecheck/internal/ast"
	"shapecheck/internal/source"
)

// Binding is the result of a lookup. Symbol placeholders fill Symbols;
// expression placeholders fill Expr and Ledger, the ledger the expression
// was resolved in.
type Binding struct {
	Symbols *SymbolList
	Expr    ast.Node
	Ledger  *Ledger
}

// IsExpression reports whether the binding came from the expression table.
func (b Binding) IsExpression() bool { return b.Expr != nil }

// ID is the identifier the binding resolves to.
func (b Binding) ID() string {
	if b.IsExpression() {
		return ast.Identifier(b.Expr)
	}
	return b.Symbols.ID()
}

// Node is the bound student node.
func (b Binding) Node() ast.Node {
	if b.IsExpression() {
		return b.Expr
	}
	return b.Symbols.Node()
}

// Get looks key up. Expression keys consult only the expression table; any
// other key tries the variable, function and class tables in that order.
func (l *Ledger) Get(key string) (Binding, bool) {
	if strings.HasPrefix(key, ExprPrefix) {
		n, ok := l.exprs[key]
		if !ok {
			return Binding{}, false
		}
		return Binding{Expr: n, Ledger: l}, true
	}
	for t := TableVariable; t <= TableClass; t++ {
		if list, ok := l.table(t).get(key); ok {
			return Binding{Symbols: list}, true
		}
	}
	return Binding{}, false
}

// Contains reports whether key is bound as an expression, a variable or a
// function. Class bindings are found by Get but not reported here.
func (l *Ledger) Contains(key string) bool {
	if strings.HasPrefix(key, ExprPrefix) {
		_, ok := l.exprs[key]
		return ok
	}
	if _, ok := l.table(TableVariable).get(key); ok {
		return true
	}
	_, ok := l.table(TableFunction).get(key)
	return ok
}

// Names maps each variable placeholder to the identifier it is bound to.
func (l *Ledger) Names() map[string]string {
	tbl := l.table(TableVariable)
	out := make(map[string]string, len(tbl.entries))
	for key, list := range tbl.entries {
		out[key] = list.ID()
	}
	return out
}

// EarliestLine returns the first (or, with first=false, the last) student
// line among the raw node pairings. Symbol tables do not contribute; without
// pairings the result is source.NoLocation.
func (l *Ledger) EarliestLine(first bool) source.Location {
	best := 0
	for _, std := range l.pairings {
		line := std.Line()
		if line <= 0 {
			continue
		}
		if best == 0 || (first && line < best) || (!first && line > best) {
			best = line
		}
	}
	return source.At(best)
}

// MatchLine is the first paired line, or -1 when nothing is paired.
func (l *Ledger) MatchLine() int {
	loc := l.EarliestLine(true)
	if !loc.IsValid() {
		return -1
	}
	return int(loc.Line)
}
