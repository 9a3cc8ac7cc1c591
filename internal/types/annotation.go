package types

import (
	"golang.org/x/text/cases"
)

// foldName case-folds an annotation spelling. Casers are stateful, so each
// call gets its own.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// annotationNames maps folded annotation spellings to variants.
var annotationNames = map[string]Kind{
	"str": KindText, "string": KindText,
	"num": KindNumber, "number": KindNumber, "int": KindNumber, "integer": KindNumber,
	"float": KindNumber, "complex": KindNumber,
	"bool": KindBoolean, "boolean": KindBoolean,
	"none": KindNone,
	"dict": KindMapping, "dictionary": KindMapping,
	"list":  KindList,
	"tuple": KindTuple,
	"set":   KindSet,
	"file":  KindFile,
	"func":  KindFunction, "function": KindFunction,
	"class": KindClass,
}

// Annotations resolves textual type annotations to fresh lattice values.
type Annotations struct {
	classes *Classes
	extra   map[string]Kind
}

// NewAnnotations builds a resolver. extra maps additional spellings to
// existing annotation names ("real" -> "float"); entries whose target is not
// a known annotation are ignored and returned.
func NewAnnotations(classes *Classes, extra map[string]string) (*Annotations, []string) {
	a := &Annotations{classes: classes, extra: make(map[string]Kind, len(extra))}
	var rejected []string
	for from, to := range extra {
		k, ok := annotationNames[foldName(to)]
		if !ok {
			rejected = append(rejected, from)
			continue
		}
		a.extra[foldName(from)] = k
	}
	return a, rejected
}

func (a *Annotations) lookup(name string) (Kind, bool) {
	key := foldName(name)
	if k, ok := annotationNames[key]; ok {
		return k, true
	}
	if a != nil {
		k, ok := a.extra[key]
		return k, ok
	}
	return 0, false
}

// Zero returns the default value of an annotated variant.
func (a *Annotations) Zero(k Kind) *Type {
	switch k {
	case KindText:
		return Text()
	case KindList:
		return List(nil, true)
	case KindSet:
		return Set(nil, true)
	case KindTuple:
		return Tuple()
	case KindMapping:
		return &Type{Kind: KindMapping, Map: &MapInfo{Shape: MapGeneral}}
	case KindFunction:
		return fn("", EffectConst, nil, nil)
	case KindClass:
		if a == nil || a.classes == nil {
			return Unknown()
		}
		return a.classes.Define("")
	default:
		return leaf(k)
	}
}

// Resolve maps an annotation name to a type: built-in names first, then
// variables known to the oracle, else Unknown.
func (a *Annotations) Resolve(name string, oracle VariableOracle) *Type {
	if k, ok := a.lookup(name); ok {
		return a.Zero(k)
	}
	if oracle != nil {
		if t, ok := oracle.LookupType(name); ok && t != nil {
			return t
		}
	}
	return Unknown()
}

// AnnotationKind classifies annotation syntax.
type AnnotationKind uint8

const (
	AnnotationOther AnnotationKind = iota
	AnnotationName
	AnnotationText
	AnnotationList
	AnnotationDict
)

// Annotation is the parsed shape of a type annotation: a bare name, a string,
// a list literal like [int], or a dict literal like {"a": int}.
type Annotation struct {
	Kind   AnnotationKind
	Name   string
	Elems  []Annotation
	Keys   []Annotation
	Values []Annotation
}

// ResolveTree resolves a structured annotation.
func (a *Annotations) ResolveTree(ann Annotation, oracle VariableOracle) *Type {
	switch ann.Kind {
	case AnnotationName, AnnotationText:
		return a.Resolve(ann.Name, oracle)
	case AnnotationList:
		if len(ann.Elems) == 0 {
			return List(nil, true)
		}
		return List(a.ResolveTree(ann.Elems[0], oracle), true)
	case AnnotationDict:
		if len(ann.Keys) == 0 {
			return EmptyMapping()
		}
		values := make([]*Type, len(ann.Values))
		for i, v := range ann.Values {
			values[i] = a.ResolveTree(v, oracle)
		}
		if allText(ann.Keys) {
			lits := make([]Literal, len(ann.Keys))
			for i, k := range ann.Keys {
				lits[i] = TextLit(k.Name)
			}
			return LiteralMapping(lits, values)
		}
		keys := make([]*Type, len(ann.Keys))
		for i, k := range ann.Keys {
			keys[i] = a.ResolveTree(k, oracle)
		}
		return &Type{Kind: KindMapping, Map: &MapInfo{Shape: MapGeneral, Keys: keys, Values: values}}
	default:
		return Unknown()
	}
}

func allText(anns []Annotation) bool {
	for _, a := range anns {
		if a.Kind != AnnotationText {
			return false
		}
	}
	return true
}
