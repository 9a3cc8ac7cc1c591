package types

import (
	"shapecheck/internal/diag"
	"shapecheck/internal/source"
)

// Analyzer is the flow analyzer walking a submission. The lattice calls back
// into it to report issues and to re-register variables whose type grew.
type Analyzer interface {
	// Reporter is the one-way issue sink.
	Reporter() diag.Reporter
	// IdentifyCaller describes the value an attribute was loaded from, for
	// messages only.
	IdentifyCaller(callee string) string
	// AppendVariable records that the variable callee now holds t.
	AppendVariable(callee string, t *Type, at source.Location)
}

// VariableOracle resolves names that are not built-in annotation names.
type VariableOracle interface {
	LookupType(name string) (*Type, bool)
}
