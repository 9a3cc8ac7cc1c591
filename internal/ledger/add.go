package ledger

import (
	"fmt"

	"shapecheck/internal/ast"
)

// insert records s under key in t and re-checks the key for conflicts. It
// returns the ledger's running conflict count.
func (l *Ledger) insert(t Table, key string, s Symbol) int {
	tbl := l.table(t)
	list, ok := tbl.get(key)
	if !ok {
		tbl.put(key, newSymbolList(s))
		return len(l.conflicts)
	}
	list.add(s)
	if _, conflicted := l.conflictSet[key]; !conflicted && list.disagrees(s.ID) {
		l.conflictSet[key] = struct{}{}
		l.conflicts = append(l.conflicts, key)
	}
	return len(l.conflicts)
}

func checkStudent(std ast.Node) error {
	if ast.IsNil(std) {
		return ErrMalformedNode
	}
	return nil
}

// AddVariable binds the placeholder named by ins to the student node std.
// The returned count covers the whole ledger; compare it with the previous
// value to learn whether this call introduced a conflict.
func (l *Ledger) AddVariable(ins, std ast.Node) (int, error) {
	if ast.IsNil(ins) {
		return len(l.conflicts), fmt.Errorf("variable placeholder: %w", ErrMalformedNode)
	}
	return l.AddVariableKey(ins.ID(), std)
}

// AddVariableKey is AddVariable with an explicit placeholder key.
func (l *Ledger) AddVariableKey(key string, std ast.Node) (int, error) {
	if err := checkStudent(std); err != nil {
		return len(l.conflicts), fmt.Errorf("variable %s: %w", key, err)
	}
	return l.insert(TableVariable, key, Symbol{ID: std.ID(), Node: std}), nil
}

// functionKey is the placeholder a function pattern binds: the definition
// name, or the placeholder id when the pattern is a call.
func functionKey(ins ast.Node) string {
	if ins.Kind() == ast.KindFunctionDef {
		return ins.DefName()
	}
	return ins.ID()
}

// AddFunction binds a function placeholder. A student definition binds by
// its declared name. Any other student node binds by its id; when it is not
// the call itself, the enclosing node is recorded instead.
func (l *Ledger) AddFunction(ins, std ast.Node) (int, error) {
	if ast.IsNil(ins) {
		return len(l.conflicts), fmt.Errorf("function placeholder: %w", ErrMalformedNode)
	}
	return l.AddFunctionKey(functionKey(ins), std)
}

// AddFunctionKey is AddFunction with an explicit placeholder key.
func (l *Ledger) AddFunctionKey(key string, std ast.Node) (int, error) {
	if err := checkStudent(std); err != nil {
		return len(l.conflicts), fmt.Errorf("function %s: %w", key, err)
	}
	if std.Kind() == ast.KindFunctionDef {
		return l.insert(TableFunction, key, Symbol{ID: std.DefName(), Node: std}), nil
	}
	node := std
	if std.Kind() != ast.KindCall {
		node = std.Parent()
		if ast.IsNil(node) {
			return len(l.conflicts), fmt.Errorf("function %s: %s has no enclosing node: %w", key, std.Kind(), ErrMalformedNode)
		}
	}
	return l.insert(TableFunction, key, Symbol{ID: std.ID(), Node: node}), nil
}

func classKey(ins ast.Node) string {
	if ins.Kind() == ast.KindClassDef {
		return ins.DefName()
	}
	return ins.ID()
}

// AddClass binds a class placeholder to a student class definition.
func (l *Ledger) AddClass(ins, std ast.Node) (int, error) {
	if ast.IsNil(ins) {
		return len(l.conflicts), fmt.Errorf("class placeholder: %w", ErrMalformedNode)
	}
	return l.AddClassKey(classKey(ins), std)
}

// AddClassKey is AddClass with an explicit placeholder key.
func (l *Ledger) AddClassKey(key string, std ast.Node) (int, error) {
	if err := checkStudent(std); err != nil {
		return len(l.conflicts), fmt.Errorf("class %s: %w", key, err)
	}
	if std.Kind() != ast.KindClassDef {
		return len(l.conflicts), fmt.Errorf("class %s: got %s: %w", key, std.Kind(), ErrNotDefinition)
	}
	return l.insert(TableClass, key, Symbol{ID: std.DefName(), Node: std}), nil
}

// AddExpression binds an expression placeholder, replacing any previous
// binding. Expression bindings are not checked for conflicts.
func (l *Ledger) AddExpression(ins, std ast.Node) error {
	if ast.IsNil(ins) {
		return fmt.Errorf("expression placeholder: %w", ErrMalformedNode)
	}
	return l.AddExpressionKey(ins.ID(), std)
}

// AddExpressionKey is AddExpression with an explicit placeholder key.
func (l *Ledger) AddExpressionKey(key string, std ast.Node) error {
	if err := checkStudent(std); err != nil {
		return fmt.Errorf("expression %s: %w", key, err)
	}
	l.setExpr(key, std)
	return nil
}

func (l *Ledger) setExpr(key string, std ast.Node) {
	if _, ok := l.exprs[key]; !ok {
		l.exprOrder = append(l.exprOrder, key)
	}
	l.exprs[key] = std
}

// AddNodePairing records that instructor node ins matched student node std.
// Pairings only feed location queries.
func (l *Ledger) AddNodePairing(ins, std ast.Node) error {
	if ast.IsNil(ins) {
		return fmt.Errorf("pairing: instructor node: %w", ErrMalformedNode)
	}
	if err := checkStudent(std); err != nil {
		return fmt.Errorf("pairing: %w", err)
	}
	l.setPairing(ins, std)
	return nil
}

func (l *Ledger) setPairing(ins, std ast.Node) {
	if _, ok := l.pairings[ins]; !ok {
		l.pairedOrder = append(l.pairedOrder, ins)
	}
	l.pairings[ins] = std
}
