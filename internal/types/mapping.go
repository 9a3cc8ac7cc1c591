package types

// MapShape is the representation a Mapping is currently in.
type MapShape uint8

const (
	// MapEmpty: no entries observed.
	MapEmpty MapShape = iota
	// MapLiteral: parallel Literals/Values, exact per-key answers.
	MapLiteral
	// MapGeneral: homogeneous Keys[0]/Values[0] once keys are not all known.
	MapGeneral
)

func (s MapShape) String() string {
	switch s {
	case MapEmpty:
		return "empty"
	case MapLiteral:
		return "literal"
	case MapGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// MapInfo is the payload of a Mapping. Only the first entry of Keys and
// Values is consulted for general mappings.
type MapInfo struct {
	Shape    MapShape
	Literals []Literal
	Keys     []*Type
	Values   []*Type
}

// EmptyMapping is a dictionary with no observed entries.
func EmptyMapping() *Type {
	return &Type{Kind: KindMapping, Empty: true, Map: &MapInfo{Shape: MapEmpty}}
}

// LiteralMapping pairs literal keys with value types positionally.
func LiteralMapping(literals []Literal, values []*Type) *Type {
	return &Type{Kind: KindMapping, Map: &MapInfo{
		Shape:    MapLiteral,
		Literals: append([]Literal{}, literals...),
		Values:   append([]*Type{}, values...),
	}}
}

// MappingOf is a general mapping from key to value.
func MappingOf(key, value *Type) *Type {
	m := &MapInfo{Shape: MapGeneral}
	if key != nil {
		m.Keys = []*Type{key}
	}
	if value != nil {
		m.Values = []*Type{value}
	}
	return &Type{Kind: KindMapping, Map: m}
}

func (m *MapInfo) clone() *MapInfo {
	if m == nil {
		return &MapInfo{}
	}
	out := &MapInfo{Shape: m.Shape}
	if m.Literals != nil {
		out.Literals = append([]Literal{}, m.Literals...)
	}
	if m.Keys != nil {
		out.Keys = cloneAll(m.Keys)
	}
	if m.Values != nil {
		out.Values = cloneAll(m.Values)
	}
	return out
}

func cloneAll(in []*Type) []*Type {
	out := make([]*Type, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

// HasLiteral returns the value type stored under key in a literal-keyed
// mapping, or nil.
func (t *Type) HasLiteral(key Literal) *Type {
	if t.Kind != KindMapping || t.Map.Shape != MapLiteral {
		return nil
	}
	for i, lit := range t.Map.Literals {
		if i < len(t.Map.Values) && LiteralsEqual(lit, key) {
			return t.Map.Values[i]
		}
	}
	return nil
}

// UpdateKey records that key maps to value. An empty mapping becomes
// literal-keyed.
func (t *Type) UpdateKey(key Literal, value *Type) {
	if t.Kind != KindMapping {
		return
	}
	if t.Map.Shape == MapEmpty {
		t.Map.Shape = MapLiteral
		t.Empty = false
	}
	t.Map.Literals = append(t.Map.Literals, key)
	t.Map.Values = append(t.Map.Values, guardCycle(t, value))
}

// accessItem answers index (keys=false) and iterate (keys=true) on a mapping.
func (t *Type) accessItem(k Key, keys bool) *Type {
	m := t.Map
	if t.Empty || m == nil {
		return Unknown()
	}
	switch m.Shape {
	case MapLiteral:
		lit, ok := k.Literal()
		if !ok {
			return Unknown()
		}
		for i, candidate := range m.Literals {
			if i < len(m.Values) && LiteralsEqual(candidate, lit) {
				return m.Values[i].Clone()
			}
		}
		return Unknown()
	case MapGeneral:
		side := m.Values
		if keys {
			side = m.Keys
		}
		if len(side) == 0 {
			return Unknown()
		}
		return side[0].Clone()
	default:
		return Unknown()
	}
}

// firstEntry returns the key and value types items()/keys()/values() report.
func (t *Type) firstEntry() (key, value *Type, ok bool) {
	m := t.Map
	if t.Empty || m == nil {
		return nil, nil, false
	}
	switch m.Shape {
	case MapLiteral:
		if len(m.Literals) == 0 || len(m.Values) == 0 {
			return nil, nil, false
		}
		return m.Literals[0].Type(), m.Values[0].Clone(), true
	case MapGeneral:
		if len(m.Keys) == 0 || len(m.Values) == 0 {
			return nil, nil, false
		}
		return m.Keys[0].Clone(), m.Values[0].Clone(), true
	default:
		return nil, nil, false
	}
}
