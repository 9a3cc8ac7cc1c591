package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Type lattice issues raised while walking a submission.
	TypeInfo             Code = 1000
	TypeAppendToNonList  Code = 1001
	TypeIncompatible     Code = 1002
	TypeIterateNonList   Code = 1003
	TypeUnknownAttribute Code = 1004
	TypeIndexOutOfRange  Code = 1005
	TypeRecursion        Code = 1006

	// Pattern match issues surfaced from the binding ledger.
	MatchInfo       Code = 2000
	MatchConflict   Code = 2001
	MatchUnresolved Code = 2002
	MatchNoLocation Code = 2003

	// Input/loading problems in the tooling around the core.
	IOLoadFailed    Code = 4001
	IODecodeFailed  Code = 4002
	IOCacheCorrupt  Code = 4003
	IOConfigInvalid Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	TypeInfo:             "Type information",
	TypeAppendToNonList:  "Append to non-list",
	TypeIncompatible:     "Incompatible types",
	TypeIterateNonList:   "Iteration over non-list",
	TypeUnknownAttribute: "Unknown attribute",
	TypeIndexOutOfRange:  "Index out of range",
	TypeRecursion:        "Recursive call",

	MatchInfo:       "Match information",
	MatchConflict:   "Conflicting placeholder bindings",
	MatchUnresolved: "Unresolved placeholder",
	MatchNoLocation: "Match has no location",

	IOLoadFailed:    "Failed to load input",
	IODecodeFailed:  "Failed to decode record",
	IOCacheCorrupt:  "Corrupt cache entry",
	IOConfigInvalid: "Invalid configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("MAT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
