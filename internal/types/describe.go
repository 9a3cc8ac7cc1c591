package types

import "strings"

// Description is the precise natural-language description of t used in
// feedback. Literal-keyed mappings spell out each key.
func (t *Type) Description() string {
	switch t.Kind {
	case KindMapping:
		return t.describeMapping()
	case KindInstance:
		if name := t.Name(); name != "" {
			return "an instance of " + name
		}
	}
	return t.Kind.SingularName()
}

func (t *Type) describeMapping() string {
	base := KindMapping.SingularName()
	m := t.Map
	if m == nil {
		return base
	}
	switch m.Shape {
	case MapLiteral:
		if len(m.Literals) == 0 {
			return base
		}
		parts := make([]string, 0, len(m.Literals))
		for i, lit := range m.Literals {
			if i >= len(m.Values) {
				break
			}
			parts = append(parts, lit.Repr()+" to "+m.Values[i].Description())
		}
		return base + " mapping " + strings.Join(parts, ", ")
	case MapGeneral:
		if len(m.Keys) == 0 || len(m.Values) == 0 {
			return base
		}
		return base + " mapping " + m.Keys[0].Description() + " to " + m.Values[0].Description()
	default:
		return base
	}
}
