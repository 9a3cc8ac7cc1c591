package ledger

import (
	"fmt"
	"strings"

	"shapecheck/internal/diag"
	"shapecheck/internal/source"
)

// ReportConflicts emits one MatchConflict warning per conflicted
// placeholder, with a note for every binding under it.
func (l *Ledger) ReportConflicts(r diag.Reporter) {
	for _, key := range l.conflicts {
		list, t, ok := l.lookupSymbols(key)
		if !ok {
			continue
		}
		ids := make([]string, 0, list.Len())
		seen := make(map[string]struct{}, list.Len())
		for _, s := range list.items {
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			ids = append(ids, s.ID)
		}
		b := diag.ReportWarning(r, diag.MatchConflict, source.At(list.Line()),
			fmt.Sprintf("%s placeholder %s is bound to %s", t, key, strings.Join(ids, " and "))).
			WithSubject(key)
		for _, s := range list.items {
			b.WithNote(source.At(s.Line()), "bound to "+s.ID)
		}
		b.Emit()
	}
	if len(l.conflicts) == 0 && len(l.pairings) == 0 && l.bindingCount() > 0 {
		diag.ReportInfo(r, diag.MatchNoLocation, source.NoLocation,
			"match has bindings but no paired nodes, so it has no location").Emit()
	}
}

func (l *Ledger) lookupSymbols(key string) (*SymbolList, Table, bool) {
	for t := TableVariable; t <= TableClass; t++ {
		if list, ok := l.table(t).get(key); ok {
			return list, t, true
		}
	}
	return nil, 0, false
}

func (l *Ledger) bindingCount() int {
	n := len(l.exprs)
	for t := TableVariable; t <= TableClass; t++ {
		n += len(l.tables[t].entries)
	}
	return n
}

// RequireBound reports a MatchUnresolved error for every key that Contains
// does not know and returns whether all keys were bound.
func (l *Ledger) RequireBound(r diag.Reporter, keys ...string) bool {
	ok := true
	at := l.EarliestLine(true)
	for _, key := range keys {
		if l.Contains(key) {
			continue
		}
		ok = false
		diag.ReportError(r, diag.MatchUnresolved, at, "placeholder "+key+" is not bound in this match").
			WithSubject(key).
			Emit()
	}
	return ok
}
