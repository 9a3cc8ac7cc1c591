package types

import (
	"shapecheck/internal/diag"
	"shapecheck/internal/source"
)

type appended struct {
	name string
	typ  *Type
	at   source.Location
}

// fakeAnalyzer records everything the lattice reports back.
type fakeAnalyzer struct {
	bag      *diag.Bag
	appended []appended
}

func newFakeAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{bag: diag.NewBag(16)}
}

func (f *fakeAnalyzer) Reporter() diag.Reporter { return diag.BagReporter{Bag: f.bag} }

func (f *fakeAnalyzer) IdentifyCaller(callee string) string {
	if callee == "" {
		return "a value"
	}
	return "the variable " + callee
}

func (f *fakeAnalyzer) AppendVariable(name string, t *Type, at source.Location) {
	f.appended = append(f.appended, appended{name: name, typ: t, at: at})
}

type mapOracle map[string]*Type

func (m mapOracle) LookupType(name string) (*Type, bool) {
	t, ok := m[name]
	return t, ok
}

// sampleOf builds a representative value of every variant.
func sampleOf(k Kind, classes *Classes) *Type {
	switch k {
	case KindTuple:
		return Tuple(Number(), Text())
	case KindList:
		return List(Number(), false)
	case KindSet:
		return Set(Text(), false)
	case KindGenerator:
		return Generator(Boolean(), false)
	case KindMapping:
		return LiteralMapping([]Literal{TextLit("a")}, []*Type{Number()})
	case KindFunction:
		return Func("f", Number())
	case KindClass:
		return classes.Define("Dog")
	case KindInstance:
		return classes.Define("Cat").Instance()
	case KindModule:
		return Module("math", nil, map[string]*Type{"pi": Number()})
	case KindText:
		return Text()
	default:
		return leaf(k)
	}
}
