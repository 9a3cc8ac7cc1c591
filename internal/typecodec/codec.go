package typecodec

import (
	"fmt"
	"maps"
	"slices"

	"shapecheck/internal/types"
)

// Encode builds the wire record of t.
func Encode(t *types.Type) (*Record, error) {
	if t == nil {
		return nil, fmt.Errorf("nil type: %w", ErrMalformed)
	}
	rec := &Record{Kind: t.Kind.String()}
	switch t.Kind {
	case types.KindText:
		rec.Empty = t.Empty
	case types.KindList, types.KindSet, types.KindGenerator:
		rec.Empty = t.Empty
		if t.Elem != nil {
			sub, err := Encode(t.Elem)
			if err != nil {
				return nil, fmt.Errorf("%s element: %w", t.Kind, err)
			}
			rec.Subtype = sub
		}
	case types.KindTuple:
		elems, err := encodeAll(t.Elems)
		if err != nil {
			return nil, fmt.Errorf("tuple: %w", err)
		}
		rec.Elements = elems
	case types.KindMapping:
		if err := encodeMapping(rec, t); err != nil {
			return nil, err
		}
	case types.KindModule:
		rec.Name = t.Mod.Name
		var err error
		if rec.Submodules, err = encodeFields(t.Mod.Submodules); err != nil {
			return nil, fmt.Errorf("module %s: %w", t.Mod.Name, err)
		}
		if rec.Fields, err = encodeFields(t.Mod.Fields); err != nil {
			return nil, fmt.Errorf("module %s: %w", t.Mod.Name, err)
		}
	case types.KindFunction:
		rec.Name = t.Fn.Name
		if ret := t.Fn.ReturnType(); ret != nil {
			sub, err := Encode(ret)
			if err != nil {
				return nil, fmt.Errorf("function %s: %w", t.Fn.Name, err)
			}
			rec.Returns = sub
		}
	case types.KindClass, types.KindInstance:
		return nil, fmt.Errorf("%s %s: %w", t.Kind, t.Name(), ErrNotSerializable)
	}
	return rec, nil
}

func encodeMapping(rec *Record, t *types.Type) error {
	m := t.Map
	rec.Empty = t.Empty
	if m == nil {
		return nil
	}
	var err error
	switch m.Shape {
	case types.MapLiteral:
		rec.Literals = make([]*LiteralRecord, len(m.Literals))
		for i, l := range m.Literals {
			if rec.Literals[i], err = EncodeLiteral(l); err != nil {
				return fmt.Errorf("mapping key %d: %w", i, err)
			}
		}
		if rec.Values, err = encodeAll(m.Values); err != nil {
			return fmt.Errorf("mapping: %w", err)
		}
	case types.MapGeneral:
		if rec.Keys, err = encodeAll(m.Keys); err != nil {
			return fmt.Errorf("mapping: %w", err)
		}
		if rec.Values, err = encodeAll(m.Values); err != nil {
			return fmt.Errorf("mapping: %w", err)
		}
	}
	return nil
}

func encodeAll(in []*types.Type) ([]*Record, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]*Record, len(in))
	for i, t := range in {
		rec, err := Encode(t)
		if err != nil {
			return nil, err
		}
		out[i] = rec
	}
	return out, nil
}

func encodeFields(in map[string]*types.Type) (map[string]*Record, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]*Record, len(in))
	for _, name := range slices.Sorted(maps.Keys(in)) {
		rec, err := Encode(in[name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = rec
	}
	return out, nil
}

// Decode rebuilds a type from its wire record. The kind may be the canonical
// variant name or any registered alias.
func Decode(rec *Record) (*types.Type, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil record: %w", ErrMalformed)
	}
	kind, ok := types.KindByName(rec.kindName())
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", rec.kindName(), ErrUnknownKind)
	}
	switch kind {
	case types.KindUnknown:
		return types.Unknown(), nil
	case types.KindRecursed:
		return types.Recursed(), nil
	case types.KindNumber:
		return types.Number(), nil
	case types.KindBoolean:
		return types.Boolean(), nil
	case types.KindNone:
		return types.None(), nil
	case types.KindFile:
		return types.File(), nil
	case types.KindTime:
		return types.TimeOfDay(), nil
	case types.KindDay:
		return types.DayOfWeek(), nil
	case types.KindText:
		if rec.Empty {
			return types.EmptyText(), nil
		}
		return types.Text(), nil
	case types.KindList, types.KindSet, types.KindGenerator:
		var elem *types.Type
		if rec.Subtype != nil {
			var err error
			if elem, err = Decode(rec.Subtype); err != nil {
				return nil, fmt.Errorf("%s element: %w", kind, err)
			}
		}
		switch kind {
		case types.KindSet:
			return types.Set(elem, rec.Empty), nil
		case types.KindGenerator:
			return types.Generator(elem, rec.Empty), nil
		default:
			return types.List(elem, rec.Empty), nil
		}
	case types.KindTuple:
		elems, err := decodeAll(rec.Elements)
		if err != nil {
			return nil, fmt.Errorf("tuple: %w", err)
		}
		return types.Tuple(elems...), nil
	case types.KindMapping:
		return decodeMapping(rec)
	case types.KindModule:
		subs, err := decodeFields(rec.Submodules)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", rec.Name, err)
		}
		fields, err := decodeFields(rec.Fields)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", rec.Name, err)
		}
		return types.Module(rec.Name, subs, fields), nil
	case types.KindFunction:
		returns := types.None()
		if rec.Returns != nil {
			var err error
			if returns, err = Decode(rec.Returns); err != nil {
				return nil, fmt.Errorf("function %s: %w", rec.Name, err)
			}
		}
		return types.Func(rec.Name, returns), nil
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrNotSerializable)
	}
}

func decodeMapping(rec *Record) (*types.Type, error) {
	values, err := decodeAll(rec.Values)
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	switch {
	case len(rec.Literals) > 0:
		lits := make([]types.Literal, len(rec.Literals))
		for i, l := range rec.Literals {
			if lits[i], err = DecodeLiteral(l); err != nil {
				return nil, fmt.Errorf("mapping key %d: %w", i, err)
			}
		}
		t := types.LiteralMapping(lits, values)
		t.Empty = rec.Empty
		return t, nil
	case len(rec.Keys) > 0:
		keys, err := decodeAll(rec.Keys)
		if err != nil {
			return nil, fmt.Errorf("mapping: %w", err)
		}
		t := types.MappingOf(nil, nil)
		t.Map.Keys = keys
		t.Map.Values = values
		t.Empty = rec.Empty
		return t, nil
	case rec.Empty:
		return types.EmptyMapping(), nil
	default:
		// a non-empty mapping whose key type was never observed
		return types.MappingOf(nil, nil), nil
	}
}

func decodeAll(in []*Record) ([]*types.Type, error) {
	out := make([]*types.Type, len(in))
	for i, rec := range in {
		t, err := Decode(rec)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func decodeFields(in map[string]*Record) (map[string]*types.Type, error) {
	out := make(map[string]*types.Type, len(in))
	for name, rec := range in {
		t, err := Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}
