package types

import (
	"strconv"
	"strings"
)

// LitKind enumerates literal variants.
type LitKind uint8

const (
	LitInvalid LitKind = iota
	LitNumber
	LitBoolean
	LitText
	LitTuple
	LitNone
)

func (k LitKind) String() string {
	switch k {
	case LitNumber:
		return "LiteralNumber"
	case LitBoolean:
		return "LiteralBoolean"
	case LitText:
		return "LiteralText"
	case LitTuple:
		return "LiteralTuple"
	case LitNone:
		return "LiteralNone"
	default:
		return "LiteralInvalid"
	}
}

// Literal is a compile-time-known constant used for exact container lookups.
// The zero value is LitInvalid and never equals anything.
type Literal struct {
	Kind  LitKind
	Num   float64
	Bool  bool
	Text  string
	Elems []Literal
}

func NumLit(v float64) Literal { return Literal{Kind: LitNumber, Num: v} }
func BoolLit(v bool) Literal { return Literal{Kind: LitBoolean, Bool: v} }
func TextLit(v string) Literal { return Literal{Kind: LitText, Text: v} }
func NoneLit() Literal { return Literal{Kind: LitNone} }
func TupleLit(elems ...Literal) Literal {
	return Literal{Kind: LitTuple, Elems: append([]Literal(nil), elems...)}
}

// IsValid reports whether l carries a value.
func (l Literal) IsValid() bool {
	return l.Kind != LitInvalid
}

// LiteralsEqual compares literals structurally. Literals of different
// variants are never equal, even when their values coincide numerically.
func LiteralsEqual(a, b Literal) bool {
	if !a.IsValid() || !b.IsValid() || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case LitNumber:
		return a.Num == b.Num
	case LitBoolean:
		return a.Bool == b.Bool
	case LitText:
		return a.Text == b.Text
	case LitNone:
		return true
	case LitTuple:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !LiteralsEqual(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Type returns the lattice type of the literal's value.
func (l Literal) Type() *Type {
	switch l.Kind {
	case LitNumber:
		return Number()
	case LitBoolean:
		return Boolean()
	case LitText:
		return Text()
	case LitNone:
		return None()
	case LitTuple:
		elems := make([]*Type, len(l.Elems))
		for i, e := range l.Elems {
			elems[i] = e.Type()
		}
		return Tuple(elems...)
	default:
		return Unknown()
	}
}

// Repr renders the literal the way the submission language prints it.
func (l Literal) Repr() string {
	switch l.Kind {
	case LitNumber:
		return strconv.FormatFloat(l.Num, 'g', -1, 64)
	case LitBoolean:
		if l.Bool {
			return "True"
		}
		return "False"
	case LitText:
		if strings.Contains(l.Text, "'") && !strings.Contains(l.Text, `"`) {
			return `"` + l.Text + `"`
		}
		return "'" + strings.ReplaceAll(l.Text, "'", `\'`) + "'"
	case LitNone:
		return "None"
	case LitTuple:
		parts := make([]string, len(l.Elems))
		for i, e := range l.Elems {
			parts[i] = e.Repr()
		}
		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<invalid>"
	}
}

// TypeToLiteral picks a representative literal for values of t.
func TypeToLiteral(t *Type) Literal {
	if t != nil && t.Kind == KindNumber {
		return NumLit(0)
	}
	return TextLit("")
}
