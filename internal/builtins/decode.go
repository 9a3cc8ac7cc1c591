package builtins

import (
	"encoding/json"
	"fmt"

	"shapecheck/internal/typecodec"
	"shapecheck/internal/types"
)

func decodeRecord(data []byte) (*typecodec.Record, error) {
	var rec typecodec.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	// decode once so a broken definition fails at load time
	t, err := typecodec.Decode(&rec)
	if err != nil {
		return nil, err
	}
	if t.Kind != types.KindModule {
		return nil, fmt.Errorf("top-level record is %s, want Module", t.Kind)
	}
	return &rec, nil
}
