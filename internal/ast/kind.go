package ast

import "fmt"

// Kind names the syntactic category of a node, using the node class names of
// the submission language's parser.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindModule
	KindFunctionDef
	KindClassDef
	KindName
	KindCall
	KindAttribute
	KindAssign
	KindExpr
	KindConstant
	KindReturn
	KindFor
	KindIf
	KindOther
)

var kindNames = [...]string{
	KindInvalid:     "Invalid",
	KindModule:      "Module",
	KindFunctionDef: "FunctionDef",
	KindClassDef:    "ClassDef",
	KindName:        "Name",
	KindCall:        "Call",
	KindAttribute:   "Attribute",
	KindAssign:      "Assign",
	KindExpr:        "Expr",
	KindConstant:    "Constant",
	KindReturn:      "Return",
	KindFor:         "For",
	KindIf:          "If",
	KindOther:       "Other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind maps a parser class name to a Kind. Unrecognised names map to
// KindOther so fixtures can carry node types this package does not model.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if n == name && Kind(k) != KindInvalid {
			return Kind(k)
		}
	}
	return KindOther
}
