package types

import "fmt"

// Index projects the type reached by subscripting a value of shape t.
//
// Tuples answer by position, counting from the end when it is negative, and
// panic when the position is out of range or not a position at all: callers
// only index tuples with positions they have checked. Unindexable leaves answer with a clone of themselves so the walk
// can continue.
func (t *Type) Index(k Key) *Type {
	switch t.Kind {
	case KindNumber:
		return Unknown()
	case KindTuple:
		pos, ok := k.Position()
		if !ok {
			panic(fmt.Errorf("types: tuple indexed by non-position key %s", k))
		}
		i := pos
		if i < 0 {
			i += len(t.Elems)
		}
		if i < 0 || i >= len(t.Elems) {
			panic(fmt.Errorf("types: tuple index %d out of range [-%d,%d)", pos, len(t.Elems), len(t.Elems)))
		}
		return t.Elems[i].Clone()
	case KindList, KindSet, KindGenerator:
		if t.Elem == nil {
			return Unknown()
		}
		return t.Elem.Clone()
	case KindText, KindFile:
		return Text()
	case KindMapping:
		return t.accessItem(k, false)
	default:
		return t.Clone()
	}
}

// Iterate projects the type produced by iterating a value of shape t. Only
// mappings differ from Index: iterating a mapping yields its keys.
func (t *Type) Iterate(k Key) *Type {
	if t.Kind == KindMapping {
		return t.accessItem(k, true)
	}
	return t.Index(k)
}
