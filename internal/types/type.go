// Package types implements the abstract type lattice: the possible runtime
// shapes of values in a student's program.
//
// A *Type is a tagged union over Kind. Identity matters: mutable variants are
// shared between every name bound to them, so an in-place update such as an
// append is observed through all of those names. Immutable variants are
// cloned whenever a mutable-use copy is requested.
package types

// Type describes the shape of a value. Only the fields relevant to Kind are
// populated.
type Type struct {
	Kind Kind

	// Empty is the "no elements observed" flag of List, Set, Generator,
	// Text and Mapping.
	Empty bool

	Elem  *Type       // List, Set, Generator
	Elems []*Type     // Tuple
	Map   *MapInfo    // Mapping
	Fn    *FnInfo     // Function
	Class ClassRef    // Class, Instance
	Mod   *ModuleInfo // Module
}

// ModuleInfo holds the named submodules and fields of a Module.
type ModuleInfo struct {
	Name       string
	Submodules map[string]*Type
	Fields     map[string]*Type
}

func leaf(k Kind) *Type { return &Type{Kind: k} }

func Unknown() *Type { return leaf(KindUnknown) }
func Recursed() *Type { return leaf(KindRecursed) }
func Number() *Type { return leaf(KindNumber) }
func Boolean() *Type { return leaf(KindBoolean) }
func None() *Type { return leaf(KindNone) }
func File() *Type { return leaf(KindFile) }
func TimeOfDay() *Type { return leaf(KindTime) }
func DayOfWeek() *Type { return leaf(KindDay) }

// Text is a non-empty string.
func Text() *Type { return &Type{Kind: KindText} }

// EmptyText is a string known to be empty.
func EmptyText() *Type { return &Type{Kind: KindText, Empty: true} }

// Tuple builds a fixed-length tuple of the given element types.
func Tuple(elems ...*Type) *Type {
	return &Type{Kind: KindTuple, Elems: append([]*Type(nil), elems...)}
}

func container(k Kind, elem *Type, empty bool) *Type {
	if elem == nil {
		elem = Unknown()
	}
	return &Type{Kind: k, Elem: elem, Empty: empty}
}

// List builds a list whose elements look like elem (Unknown when nil).
func List(elem *Type, empty bool) *Type { return container(KindList, elem, empty) }

// Set builds a set whose elements look like elem (Unknown when nil).
func Set(elem *Type, empty bool) *Type { return container(KindSet, elem, empty) }

// Generator builds a generator yielding elem (Unknown when nil).
func Generator(elem *Type, empty bool) *Type { return container(KindGenerator, elem, empty) }

// Module builds a module type. Nil maps are replaced by empty ones.
func Module(name string, submodules, fields map[string]*Type) *Type {
	if name == "" {
		name = "*UnknownModule"
	}
	if submodules == nil {
		submodules = make(map[string]*Type)
	}
	if fields == nil {
		fields = make(map[string]*Type)
	}
	return &Type{Kind: KindModule, Mod: &ModuleInfo{Name: name, Submodules: submodules, Fields: fields}}
}

// Name returns the declared name of functions, classes, instances (their
// class) and modules, and "" for every other variant.
func (t *Type) Name() string {
	switch t.Kind {
	case KindFunction:
		return t.Fn.Name
	case KindClass, KindInstance:
		if info := t.Class.Info(); info != nil {
			return info.Name
		}
	case KindModule:
		return t.Mod.Name
	}
	return ""
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind == KindInstance {
		return "InstanceOf" + t.Name()
	}
	return t.Kind.String()
}

// Clone returns a value-independent copy of t. Composite substructure is
// cloned recursively. Instances keep pointing at their class, and a function
// keeps its receiver: both are references, not owned state.
func (t *Type) Clone() *Type {
	switch t.Kind {
	case KindText, KindList, KindSet, KindGenerator:
		out := &Type{Kind: t.Kind, Empty: t.Empty}
		if t.Elem != nil {
			out.Elem = t.Elem.Clone()
		}
		return out
	case KindTuple:
		elems := make([]*Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = e.Clone()
		}
		return &Type{Kind: KindTuple, Elems: elems}
	case KindMapping:
		return &Type{Kind: KindMapping, Empty: t.Empty, Map: t.Map.clone()}
	case KindFunction:
		return &Type{Kind: KindFunction, Fn: t.Fn.clone()}
	case KindClass:
		return t.Class.Arena.cloneClass(t.Class.ID)
	case KindInstance:
		return &Type{Kind: KindInstance, Class: t.Class}
	case KindModule:
		return Module(t.Mod.Name, cloneFields(t.Mod.Submodules), cloneFields(t.Mod.Fields))
	default:
		return leaf(t.Kind)
	}
}

// CloneForMutableUse returns t itself for mutable variants and a fresh clone
// for immutable ones, mirroring reference semantics of mutable values.
func (t *Type) CloneForMutableUse() *Type {
	if t.Kind.Immutable() {
		return t.Clone()
	}
	return t
}

// IsEmpty reports the container emptiness flag. Variants without one are
// vacuously empty, except files which always have content to read.
func (t *Type) IsEmpty() bool {
	switch t.Kind {
	case KindText, KindList, KindSet, KindGenerator, KindMapping:
		return t.Empty
	case KindFile:
		return false
	default:
		return true
	}
}

// IsEqual reports whether name is one of the registered aliases of t's
// variant. It is a name test against a closed table, not a structural
// comparison of two types.
func (t *Type) IsEqual(name string) bool {
	return hasAlias(t.Kind, name)
}

// IsInstance is IsEqual; the lattice has no subtyping.
func (t *Type) IsInstance(name string) bool {
	return t.IsEqual(name)
}

func cloneFields(in map[string]*Type) map[string]*Type {
	out := make(map[string]*Type, len(in))
	for k, v := range in {
		out[k] = v.Clone()
	}
	return out
}
