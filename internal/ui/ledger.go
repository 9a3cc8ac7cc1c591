package ui

import (
	"fmt"
	"strconv"
	"strings"

	"shapecheck/internal/ast"
	"shapecheck/internal/ledger"
)

// LedgerReport renders the bindings and conflicts of l.
func LedgerReport(l *ledger.Ledger, s Styler, width int) string {
	conflicted := make(map[string]bool)
	for _, k := range l.ConflictKeys() {
		conflicted[k] = true
	}

	t := &Table{Header: []string{"TABLE", "PLACEHOLDER", "STATUS", "BOUND TO"}}
	for tbl := ledger.TableVariable; tbl <= ledger.TableClass; tbl++ {
		for _, key := range l.Keys(tbl) {
			list, _ := l.Symbols(tbl, key)
			status := "bound"
			if conflicted[key] {
				status = "conflict"
			}
			t.Append(tbl.String(), key, s.Status(status), describeSymbols(list))
		}
	}
	for _, key := range l.ExpressionKeys() {
		b, _ := l.Get(key)
		t.Append("expression", key, s.Status("bound"), describeNode(b.Node()))
	}

	var b strings.Builder
	b.WriteString(t.Render(s, width))
	if line := l.MatchLine(); line >= 0 {
		fmt.Fprintf(&b, "\nmatch spans lines %d-%d (%d pairings)\n", line, l.EarliestLine(false).Line, l.Len())
	} else {
		b.WriteString("\nmatch has no paired nodes\n")
	}
	if l.HasConflicts() {
		b.WriteString(s.Banner("conflicting placeholders: " + strings.Join(l.ConflictKeys(), ", ")))
		b.WriteString("\n")
	}
	if d := l.Diagnosis(); d != "" {
		b.WriteString("diagnosis: " + d + "\n")
	}
	return b.String()
}

func describeSymbols(list *ledger.SymbolList) string {
	parts := make([]string, 0, list.Len())
	for _, sym := range list.All() {
		parts = append(parts, sym.ID+lineSuffix(sym.Line()))
	}
	return strings.Join(parts, ", ")
}

func describeNode(n ast.Node) string {
	if ast.IsNil(n) {
		return "?"
	}
	return ast.Identifier(n) + lineSuffix(n.Line())
}

func lineSuffix(line int) string {
	if line <= 0 {
		return ""
	}
	return "@" + strconv.Itoa(line)
}
