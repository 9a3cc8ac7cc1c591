package ledger

// MergeWith folds other into l. Pairings and expression bindings are a
// union in which other wins. Symbol bindings are re-inserted one by one so
// conflicts are detected the same way regardless of merge order.
func (l *Ledger) MergeWith(other *Ledger) {
	if other == nil {
		return
	}
	for _, ins := range other.pairedOrder {
		l.setPairing(ins, other.pairings[ins])
	}
	for _, key := range other.exprOrder {
		l.setExpr(key, other.exprs[key])
	}
	for t := TableVariable; t <= TableClass; t++ {
		src := other.table(t)
		for _, key := range src.order {
			for _, s := range src.entries[key].items {
				l.insert(t, key, s)
			}
		}
	}
}

// MergeIntoNew returns a fresh ledger holding l merged with other. Neither
// input is modified.
func (l *Ledger) MergeIntoNew(other *Ledger) *Ledger {
	out := New()
	out.MergeWith(l)
	out.MergeWith(other)
	return out
}
