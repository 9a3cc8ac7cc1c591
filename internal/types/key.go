package types

import "fmt"

// Key selects what Index and Iterate project: either a literal (enabling
// exact lookups on tuples and literal-keyed mappings) or a bare position.
type Key struct {
	lit   Literal
	pos   int
	byPos bool
}

// At selects a position.
func At(pos int) Key { return Key{pos: pos, byPos: true} }

// KeyOf selects by literal value.
func KeyOf(l Literal) Key { return Key{lit: l} }

// Literal returns the literal the key was built from, if any.
func (k Key) Literal() (Literal, bool) {
	if k.byPos || !k.lit.IsValid() {
		return Literal{}, false
	}
	return k.lit, true
}

// Position resolves the key to a tuple position. Numeric literals count as
// positions; anything else is not a position.
func (k Key) Position() (int, bool) {
	if k.byPos {
		return k.pos, true
	}
	if k.lit.Kind == LitNumber && k.lit.Num == float64(int(k.lit.Num)) {
		return int(k.lit.Num), true
	}
	return 0, false
}

func (k Key) String() string {
	if k.byPos {
		return fmt.Sprintf("[%d]", k.pos)
	}
	return "[" + k.lit.Repr() + "]"
}
