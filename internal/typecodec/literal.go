package typecodec

import (
	"encoding/json"
	"fmt"

	"shapecheck/internal/types"
)

var literalKinds = map[string]types.LitKind{
	types.LitNumber.String():  types.LitNumber,
	types.LitBoolean.String(): types.LitBoolean,
	types.LitText.String():    types.LitText,
	types.LitTuple.String():   types.LitTuple,
	types.LitNone.String():    types.LitNone,
	"LiteralNum":              types.LitNumber,
	"LiteralBool":             types.LitBoolean,
	"LiteralStr":              types.LitText,
}

// EncodeLiteral builds the wire record of l.
func EncodeLiteral(l types.Literal) (*LiteralRecord, error) {
	rec := &LiteralRecord{Kind: l.Kind.String()}
	switch l.Kind {
	case types.LitNumber:
		rec.Value = l.Num
	case types.LitBoolean:
		rec.Value = l.Bool
	case types.LitText:
		rec.Value = l.Text
	case types.LitNone:
	case types.LitTuple:
		rec.Elements = make([]*LiteralRecord, len(l.Elems))
		for i, e := range l.Elems {
			sub, err := EncodeLiteral(e)
			if err != nil {
				return nil, err
			}
			rec.Elements[i] = sub
		}
	default:
		return nil, fmt.Errorf("literal %s: %w", l.Kind, ErrNotSerializable)
	}
	return rec, nil
}

// DecodeLiteral rebuilds a literal from its wire record. A missing value
// decodes to the zero value of the literal's variant.
func DecodeLiteral(rec *LiteralRecord) (types.Literal, error) {
	if rec == nil {
		return types.Literal{}, fmt.Errorf("nil literal: %w", ErrMalformed)
	}
	kind, ok := literalKinds[rec.kindName()]
	if !ok {
		return types.Literal{}, fmt.Errorf("literal %q: %w", rec.kindName(), ErrUnknownKind)
	}
	switch kind {
	case types.LitNumber:
		n, err := number(rec.Value)
		if err != nil {
			return types.Literal{}, err
		}
		return types.NumLit(n), nil
	case types.LitBoolean:
		if rec.Value == nil {
			return types.BoolLit(false), nil
		}
		b, ok := rec.Value.(bool)
		if !ok {
			return types.Literal{}, fmt.Errorf("boolean literal holds %T: %w", rec.Value, ErrMalformed)
		}
		return types.BoolLit(b), nil
	case types.LitText:
		if rec.Value == nil {
			return types.TextLit(""), nil
		}
		s, ok := rec.Value.(string)
		if !ok {
			return types.Literal{}, fmt.Errorf("text literal holds %T: %w", rec.Value, ErrMalformed)
		}
		return types.TextLit(s), nil
	case types.LitTuple:
		elems := make([]types.Literal, len(rec.Elements))
		for i, e := range rec.Elements {
			l, err := DecodeLiteral(e)
			if err != nil {
				return types.Literal{}, fmt.Errorf("tuple element %d: %w", i, err)
			}
			elems[i] = l
		}
		return types.TupleLit(elems...), nil
	default:
		return types.NoneLit(), nil
	}
}

// number accepts every numeric representation the JSON and msgpack decoders
// produce for an interface value.
func number(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("number literal holds %T: %w", v, ErrMalformed)
	}
}

// LiteralFromJSON decodes a literal record.
func LiteralFromJSON(data []byte) (types.Literal, error) {
	var rec LiteralRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.Literal{}, fmt.Errorf("decode literal: %w", err)
	}
	return DecodeLiteral(&rec)
}

// LiteralToJSON encodes a literal record.
func LiteralToJSON(l types.Literal) ([]byte, error) {
	rec, err := EncodeLiteral(l)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}
