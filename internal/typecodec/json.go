package typecodec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"shapecheck/internal/types"
)

// TypeFromJSON decodes a type record.
func TypeFromJSON(data []byte) (*types.Type, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode type: %w", err)
	}
	return Decode(&rec)
}

// TypeToJSON encodes a type record.
func TypeToJSON(t *types.Type) ([]byte, error) {
	rec, err := Encode(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// RecordsFromJSON parses either a single record or an array of records
// without decoding them. The error describes whichever form the input
// starts as.
func RecordsFromJSON(data []byte) ([]*Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recs []*Record
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("decode type records: %w", err)
		}
		return recs, nil
	}
	var one Record
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decode type record: %w", err)
	}
	return []*Record{&one}, nil
}

// TypesFromJSON decodes either a single record or an array of records.
func TypesFromJSON(data []byte) ([]*types.Type, error) {
	recs, err := RecordsFromJSON(data)
	if err != nil {
		return nil, err
	}
	out := make([]*types.Type, len(recs))
	for i, rec := range recs {
		t, err := Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}

// MarshalBinary encodes t in the compact msgpack form.
func MarshalBinary(t *types.Type) ([]byte, error) {
	rec, err := Encode(t)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(rec)
}

// UnmarshalBinary decodes the compact msgpack form.
func UnmarshalBinary(data []byte) (*types.Type, error) {
	var rec Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode binary type: %w", err)
	}
	return Decode(&rec)
}
