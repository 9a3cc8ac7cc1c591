package types

import "fmt"

// Kind enumerates the closed set of lattice variants.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRecursed
	KindNumber
	KindBoolean
	KindText
	KindNone
	KindFile
	KindTime
	KindDay
	KindTuple
	KindList
	KindSet
	KindGenerator
	KindMapping
	KindFunction
	KindClass
	KindInstance
	KindModule

	kindCount
)

var kindNames = [...]string{
	KindUnknown:   "Unknown",
	KindRecursed:  "Recursed",
	KindNumber:    "Number",
	KindBoolean:   "Boolean",
	KindText:      "Text",
	KindNone:      "None",
	KindFile:      "File",
	KindTime:      "Time",
	KindDay:       "Day",
	KindTuple:     "Tuple",
	KindList:      "List",
	KindSet:       "Set",
	KindGenerator: "Generator",
	KindMapping:   "Mapping",
	KindFunction:  "Function",
	KindClass:     "Class",
	KindInstance:  "Instance",
	KindModule:    "Module",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every variant in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := KindUnknown; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Immutable reports whether values of this variant can never change in place.
// Mutable-use copies of immutable variants are fresh clones.
func (k Kind) Immutable() bool {
	switch k {
	case KindNumber, KindBoolean, KindText, KindNone, KindTuple:
		return true
	default:
		return false
	}
}

// listLike variants share the single-element-type container behaviour.
func (k Kind) listLike() bool {
	return k == KindList || k == KindSet || k == KindGenerator
}

var singularNames = [...]string{
	KindUnknown:   "a type",
	KindRecursed:  "a type",
	KindNumber:    "a number",
	KindBoolean:   "a boolean",
	KindText:      "a string",
	KindNone:      "a None",
	KindFile:      "a file",
	KindTime:      "a time of day",
	KindDay:       "a day of the week",
	KindTuple:     "a tuple",
	KindList:      "a list",
	KindSet:       "a set",
	KindGenerator: "a generator",
	KindMapping:   "a dictionary",
	KindFunction:  "a function",
	KindClass:     "a class",
	KindInstance:  "an instance",
	KindModule:    "a module",
}

// SingularName is the human-readable category used in feedback messages.
func (k Kind) SingularName() string {
	if k < kindCount {
		return singularNames[k]
	}
	return "a type"
}
