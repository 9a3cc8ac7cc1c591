// Package ledger records the correspondences a structural matcher finds
// between an instructor pattern and a student program: placeholder bindings
// for variables, functions, classes and expressions, raw node pairings, and
// the placeholders that ended up bound to differently named constructs.
//
// A Ledger is owned by one match attempt and is not safe for concurrent use.
package ledger

import (
	"errors"
	"strings"

	"shapecheck/internal/ast"
)

var (
	// ErrMalformedNode is returned when a student node is missing.
	ErrMalformedNode = errors.New("ledger: malformed student node")
	// ErrNotDefinition is returned when a class binding is not a class
	// definition.
	ErrNotDefinition = errors.New("ledger: student node is not a definition")
)

// ExprPrefix marks placeholder keys that name whole expressions.
const ExprPrefix = "__"

// Table selects one of the symbol tables.
type Table uint8

const (
	TableVariable Table = iota
	TableFunction
	TableClass
)

func (t Table) String() string {
	switch t {
	case TableVariable:
		return "variable"
	case TableFunction:
		return "function"
	case TableClass:
		return "class"
	default:
		return "table?"
	}
}

type symbolTable struct {
	entries map[string]*SymbolList
	order   []string
}

func newSymbolTable() symbolTable {
	return symbolTable{entries: make(map[string]*SymbolList)}
}

func (t *symbolTable) get(key string) (*SymbolList, bool) {
	l, ok := t.entries[key]
	return l, ok
}

func (t *symbolTable) put(key string, l *SymbolList) {
	if _, ok := t.entries[key]; !ok {
		t.order = append(t.order, key)
	}
	t.entries[key] = l
}

// Ledger is the binding map of one match.
type Ledger struct {
	tables [3]symbolTable

	exprs     map[string]ast.Node
	exprOrder []string

	pairings    map[ast.Node]ast.Node
	pairedOrder []ast.Node

	conflicts   []string
	conflictSet map[string]struct{}

	root      ast.Node
	diagnosis string
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		tables:      [3]symbolTable{newSymbolTable(), newSymbolTable(), newSymbolTable()},
		exprs:       make(map[string]ast.Node),
		pairings:    make(map[ast.Node]ast.Node),
		conflictSet: make(map[string]struct{}),
	}
}

func (l *Ledger) table(t Table) *symbolTable { return &l.tables[t] }

// Root is the student node the match was anchored at.
func (l *Ledger) Root() ast.Node     { return l.root }
func (l *Ledger) SetRoot(n ast.Node) { l.root = n }

// Diagnosis is free-form feedback attached by the caller.
func (l *Ledger) Diagnosis() string     { return l.diagnosis }
func (l *Ledger) SetDiagnosis(d string) { l.diagnosis = d }

// Len reports the number of raw node pairings.
func (l *Ledger) Len() int { return len(l.pairings) }

// HasConflicts reports whether any placeholder is bound to two different
// identifiers.
func (l *Ledger) HasConflicts() bool { return len(l.conflicts) > 0 }

// ConflictKeys returns the conflicted placeholders in the order they became
// conflicted.
func (l *Ledger) ConflictKeys() []string {
	return append([]string(nil), l.conflicts...)
}

// Keys returns the placeholders of table t in insertion order.
func (l *Ledger) Keys(t Table) []string {
	return append([]string(nil), l.table(t).order...)
}

// Symbols returns the bindings of key in table t.
func (l *Ledger) Symbols(t Table, key string) (*SymbolList, bool) {
	return l.table(t).get(key)
}

// ExpressionKeys returns the expression placeholders in insertion order.
func (l *Ledger) ExpressionKeys() []string {
	return append([]string(nil), l.exprOrder...)
}

func (l *Ledger) String() string {
	var b strings.Builder
	for t := TableVariable; t <= TableClass; t++ {
		for _, key := range l.tables[t].order {
			b.WriteString(t.String())
			b.WriteString(" ")
			b.WriteString(key)
			b.WriteString(" ->")
			for _, s := range l.tables[t].entries[key].items {
				b.WriteString(" ")
				b.WriteString(s.ID)
			}
			b.WriteString("\n")
		}
	}
	for _, key := range l.exprOrder {
		b.WriteString("expression ")
		b.WriteString(key)
		b.WriteString(" -> ")
		b.WriteString(ast.Identifier(l.exprs[key]))
		b.WriteString("\n")
	}
	if len(l.conflicts) > 0 {
		b.WriteString("conflicts: ")
		b.WriteString(strings.Join(l.conflicts, ", "))
		b.WriteString("\n")
	}
	return b.String()
}
