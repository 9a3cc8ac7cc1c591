package types

import (
	"testing"

	"shapecheck/internal/diag"
	"shapecheck/internal/source"
)

func TestCloneKeepsRegisteredName(t *testing.T) {
	classes := NewClasses(0)
	for _, k := range Kinds() {
		orig := sampleOf(k, classes)
		cl := orig.Clone()
		if cl.Kind != k {
			t.Fatalf("clone of %v has kind %v", k, cl.Kind)
		}
		if !cl.IsEqual(k.String()) || !cl.IsInstance(k.String()) {
			t.Fatalf("clone of %v does not answer to its own name", k)
		}
		if cl == orig {
			t.Fatalf("clone of %v returned the same instance", k)
		}
	}
}

func TestEveryKindIsRegistered(t *testing.T) {
	for _, k := range Kinds() {
		names := Aliases(k)
		if len(names) == 0 {
			t.Fatalf("%v has no aliases", k)
		}
		for _, name := range names {
			got, ok := KindByName(name)
			if !ok || got != k {
				t.Fatalf("KindByName(%q) = %v, %v; want %v", name, got, ok, k)
			}
		}
	}
	if Number().IsEqual("str") || Text().IsEqual("num") {
		t.Fatalf("aliases must not leak across variants")
	}
	if (&Type{Kind: kindCount + 3}).IsEqual("Number") {
		t.Fatalf("unregistered variants must answer false")
	}
}

func TestCloneForMutableUseAliasing(t *testing.T) {
	list := List(nil, true)
	alias := list.CloneForMutableUse()
	if alias != list {
		t.Fatalf("mutable list must be shared")
	}
	a := newFakeAnalyzer()
	alias.LoadAttr("append", a, "xs", source.At(3)).Call(a, "xs", []*Type{Number()}, source.At(3))
	if list.IsEmpty() || list.Elem.Kind != KindNumber {
		t.Fatalf("append through alias not visible: %+v", list)
	}

	num := Number()
	if num.CloneForMutableUse() == num {
		t.Fatalf("immutable number must be copied")
	}
	tup := Tuple(Number())
	if tup.CloneForMutableUse() == tup {
		t.Fatalf("immutable tuple must be copied")
	}
	if d := EmptyMapping(); d.CloneForMutableUse() != d {
		t.Fatalf("mapping is mutable and must be shared")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := List(List(Number(), false), false)
	cl := orig.Clone()
	cl.Elem.Empty = true
	cl.Elem.Elem = Text()
	if orig.Elem.Empty || orig.Elem.Elem.Kind != KindNumber {
		t.Fatalf("clone shares nested state with original")
	}

	m := LiteralMapping([]Literal{TextLit("a")}, []*Type{List(nil, true)})
	mc := m.Clone()
	mc.UpdateKey(TextLit("b"), Number())
	mc.Map.Values[0].Empty = false
	if len(m.Map.Literals) != 1 || !m.Map.Values[0].Empty {
		t.Fatalf("mapping clone shares state with original")
	}
}

func TestIndexing(t *testing.T) {
	tup := Tuple(Number(), Text(), Boolean())
	tests := []struct {
		name string
		typ  *Type
		key  Key
		want Kind
	}{
		{"tuple by position", tup, At(1), KindText},
		{"tuple by literal", tup, KeyOf(NumLit(2)), KindBoolean},
		{"tuple from the end", tup, At(-1), KindBoolean},
		{"tuple by negative literal", tup, KeyOf(NumLit(-3)), KindNumber},
		{"list ignores key", List(Text(), false), At(99), KindText},
		{"set ignores key", Set(Number(), false), KeyOf(TextLit("x")), KindNumber},
		{"generator ignores key", Generator(Boolean(), false), At(0), KindBoolean},
		{"text yields text", Text(), At(0), KindText},
		{"file yields text", File(), At(0), KindText},
		{"number yields unknown", Number(), At(0), KindUnknown},
		{"none yields itself", None(), At(0), KindNone},
		{"boolean yields itself", Boolean(), At(0), KindBoolean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Index(tt.key); got.Kind != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got.Kind)
			}
		})
	}
	if got := tup.Index(At(0)); got == tup.Elems[0] {
		t.Fatalf("tuple index must return a clone")
	}
}

func TestTupleIndexOutOfRangePanics(t *testing.T) {
	for _, key := range []Key{At(1), At(-2), KeyOf(TextLit("a"))} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for key %s", key)
				}
			}()
			Tuple(Number()).Index(key)
		}()
	}
}

func TestLiteralMappingLookup(t *testing.T) {
	m := LiteralMapping([]Literal{TextLit("a"), TextLit("b")}, []*Type{Number(), Text()})
	if got := m.Index(KeyOf(TextLit("a"))); got.Kind != KindNumber {
		t.Fatalf("m[a] = %v, want Number", got)
	}
	if got := m.Index(KeyOf(TextLit("b"))); got.Kind != KindText {
		t.Fatalf("m[b] = %v, want Text", got)
	}
	if got := m.Index(KeyOf(TextLit("c"))); got.Kind != KindUnknown {
		t.Fatalf("m[c] = %v, want Unknown", got)
	}
	if got := m.Index(KeyOf(NumLit(0))); got.Kind != KindUnknown {
		t.Fatalf("numeric key must not match text literal, got %v", got)
	}
	if got := m.Index(At(0)); got.Kind != KindUnknown {
		t.Fatalf("positional key must not match literal keys, got %v", got)
	}
	if m.HasLiteral(TextLit("b")) == nil || m.HasLiteral(TextLit("z")) != nil {
		t.Fatalf("HasLiteral mismatch")
	}
}

func TestGeneralAndEmptyMapping(t *testing.T) {
	g := MappingOf(Text(), Number())
	if got := g.Index(KeyOf(TextLit("anything"))); got.Kind != KindNumber {
		t.Fatalf("general index = %v, want Number", got)
	}
	if got := g.Iterate(At(0)); got.Kind != KindText {
		t.Fatalf("general iterate = %v, want Text", got)
	}
	e := EmptyMapping()
	if !e.IsEmpty() || e.Index(At(0)).Kind != KindUnknown || e.Iterate(At(0)).Kind != KindUnknown {
		t.Fatalf("empty mapping must answer Unknown")
	}
	e.UpdateKey(TextLit("k"), Boolean())
	if e.IsEmpty() || e.Map.Shape != MapLiteral || e.Index(KeyOf(TextLit("k"))).Kind != KindBoolean {
		t.Fatalf("UpdateKey must turn an empty mapping literal-keyed: %+v", e.Map)
	}
}

func TestAppendToNonListReportsIssue(t *testing.T) {
	a := newFakeAnalyzer()
	got := Number().LoadAttr("append", a, "total", source.At(7))
	if got.Kind != KindUnknown {
		t.Fatalf("expected Unknown, got %v", got)
	}
	items := a.bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected one issue, got %d", len(items))
	}
	issue := items[0]
	if issue.Code != diag.TypeAppendToNonList || issue.Primary.Line != 7 || issue.Subject != "a number" {
		t.Fatalf("unexpected issue %+v", issue)
	}

	if got := Number().LoadAttr("frobnicate", a, "total", source.At(8)); got.Kind != KindUnknown {
		t.Fatalf("unknown attribute must be Unknown, got %v", got)
	}
	if a.bag.Len() != 1 {
		t.Fatalf("unknown attributes must not report issues")
	}
}

func TestListAppendReRegistersVariable(t *testing.T) {
	a := newFakeAnalyzer()
	xs := List(nil, true)
	method := xs.LoadAttr("append", a, "xs", source.At(2))
	if method.Kind != KindFunction || method.Fn.Effect != EffectListAppend {
		t.Fatalf("expected bound append, got %v", method)
	}
	if res := method.Call(a, "xs", []*Type{Text()}, source.At(2)); res.Kind != KindNone {
		t.Fatalf("append returns None, got %v", res)
	}
	if xs.Empty || xs.Elem.Kind != KindText {
		t.Fatalf("receiver not widened: %+v", xs)
	}
	if len(a.appended) != 1 || a.appended[0].name != "xs" || a.appended[0].typ.Elem.Kind != KindText || a.appended[0].typ.Empty {
		t.Fatalf("variable not re-registered: %+v", a.appended)
	}

	method.Call(a, "", nil, source.At(3))
	if len(a.appended) != 1 {
		t.Fatalf("append without arguments must not re-register")
	}
}

func TestSelfReferenceBecomesRecursed(t *testing.T) {
	xs := List(nil, true)
	xs.LoadAttr("append", nil, "", source.At(1)).Call(nil, "", []*Type{xs}, source.At(1))
	if xs.Elem.Kind != KindRecursed {
		t.Fatalf("xs.append(xs) stored %v", xs.Elem)
	}
	if got := xs.Index(At(0)); got.Kind != KindRecursed {
		t.Fatalf("index = %v", got)
	}
	if xs.Clone().Elem.Kind != KindRecursed || xs.Description() != "a list" {
		t.Fatalf("walks over the list must terminate")
	}

	// Reaching the receiver through another container counts too.
	ys := List(nil, true)
	wrapper := Tuple(List(ys, false))
	ys.LoadAttr("append", nil, "", source.At(2)).Call(nil, "", []*Type{wrapper}, source.At(2))
	if ys.Elem.Kind != KindRecursed {
		t.Fatalf("indirect cycle stored %v", ys.Elem)
	}

	m := EmptyMapping()
	m.UpdateKey(TextLit("self"), m)
	if got := m.HasLiteral(TextLit("self")); got == nil || got.Kind != KindRecursed {
		t.Fatalf("mapping self value = %v", got)
	}

	zs := List(nil, true)
	zs.LoadAttr("append", nil, "", source.At(3)).Call(nil, "", []*Type{List(Number(), false)}, source.At(3))
	if zs.Elem.Kind != KindList {
		t.Fatalf("ordinary nesting must be kept, got %v", zs.Elem)
	}
}

func TestMappingMethods(t *testing.T) {
	m := LiteralMapping([]Literal{TextLit("a")}, []*Type{Number()})
	items := m.LoadAttr("items", nil, "", source.NoLocation).Call(nil, "", nil, source.NoLocation)
	if items.Kind != KindList || items.Elem.Kind != KindTuple || items.Elem.Elems[0].Kind != KindText || items.Elem.Elems[1].Kind != KindNumber {
		t.Fatalf("items = %v", items)
	}
	keys := m.LoadAttr("keys", nil, "", source.NoLocation).Call(nil, "", nil, source.NoLocation)
	if keys.Elem.Kind != KindText || keys.Empty {
		t.Fatalf("keys = %+v", keys)
	}
	values := MappingOf(Text(), Boolean()).LoadAttr("values", nil, "", source.NoLocation).Call(nil, "", nil, source.NoLocation)
	if values.Elem.Kind != KindBoolean {
		t.Fatalf("values = %+v", values)
	}
	empty := EmptyMapping().LoadAttr("keys", nil, "", source.NoLocation).Call(nil, "", nil, source.NoLocation)
	if !empty.Empty || empty.Elem.Kind != KindUnknown {
		t.Fatalf("keys of empty mapping = %+v", empty)
	}
}

func TestBuiltinMethodTables(t *testing.T) {
	tests := []struct {
		recv *Type
		attr string
		want Kind
	}{
		{Text(), "upper", KindText},
		{Text(), "find", KindNumber},
		{Text(), "isdigit", KindBoolean},
		{Text(), "split", KindList},
		{File(), "read", KindText},
		{File(), "close", KindNone},
		{File(), "readlines", KindList},
	}
	for _, tt := range tests {
		f := tt.recv.LoadAttr(tt.attr, nil, "", source.NoLocation)
		if f.Kind != KindFunction || f.Name() != tt.attr {
			t.Fatalf("%v.%s is %v", tt.recv, tt.attr, f)
		}
		if got := f.Call(nil, "", nil, source.NoLocation); got.Kind != tt.want {
			t.Fatalf("%v.%s() = %v, want %v", tt.recv, tt.attr, got.Kind, tt.want)
		}
	}
	if len(Text().Fields()) != len(textMethods) {
		t.Fatalf("Fields must list every text method")
	}
}

func TestFunctionForms(t *testing.T) {
	tup := Tuple(Boolean(), Number())
	if got := IdentityFunc("id").Call(nil, "", []*Type{tup}, source.NoLocation); got.Kind != KindTuple || got == tup {
		t.Fatalf("identity must return a clone of the argument")
	}
	if got := ElementFunc("first").Call(nil, "", []*Type{tup}, source.NoLocation); got.Kind != KindBoolean {
		t.Fatalf("element = %v", got)
	}
	if got := ElementFunc("first").Call(nil, "", []*Type{Tuple()}, source.NoLocation); got.Kind != KindUnknown {
		t.Fatalf("element of empty tuple = %v", got)
	}
	if got := IdentityFunc("id").Call(nil, "", nil, source.NoLocation); got.Kind != KindUnknown {
		t.Fatalf("identity without args = %v", got)
	}
	if got := VoidFunc("v").Call(nil, "", nil, source.NoLocation); got.Kind != KindNone {
		t.Fatalf("void = %v", got)
	}
	ret := List(Number(), false)
	fixed := Func("f", ret)
	if got := fixed.Call(nil, "", nil, source.NoLocation); got == ret || got.Kind != KindList {
		t.Fatalf("fixed return must be cloned per call")
	}
	if got := Number().Call(nil, "", nil, source.NoLocation); got.Kind != KindUnknown {
		t.Fatalf("calling a number = %v", got)
	}
}

func TestClassesShareAttributesWithInstances(t *testing.T) {
	classes := NewClasses(0)
	dog := classes.Define("Dog")
	rex := dog.Instance()
	rex.AddAttr("name", Text())

	if f, ok := dog.Field("name"); !ok || f.Kind != KindText {
		t.Fatalf("attribute added through instance not visible on class")
	}
	other := dog.Constructor().Call(nil, "", nil, source.NoLocation)
	if other.Kind != KindInstance || other.Name() != "Dog" {
		t.Fatalf("constructor returned %v", other)
	}
	if got := other.LoadAttr("name", nil, "", source.NoLocation); got.Kind != KindText {
		t.Fatalf("new instance does not see class attribute: %v", got)
	}
	if viaCall := dog.Call(nil, "", nil, source.NoLocation); viaCall.Kind != KindInstance {
		t.Fatalf("calling a class must construct an instance")
	}

	cl := dog.Clone()
	cl.AddAttr("age", Number())
	if _, ok := dog.Field("age"); ok {
		t.Fatalf("cloned class must not write into the original")
	}
	if _, ok := cl.Field("name"); !ok || cl.Name() != "Dog" {
		t.Fatalf("cloned class lost its definition")
	}
	if classes.Len() != 2 {
		t.Fatalf("expected 2 classes in arena, got %d", classes.Len())
	}
	if rex.Description() != "an instance of Dog" || rex.String() != "InstanceOfDog" {
		t.Fatalf("unexpected instance naming %q / %q", rex.Description(), rex.String())
	}
}

func TestIsEmptyDefaults(t *testing.T) {
	if !Number().IsEmpty() || !Unknown().IsEmpty() {
		t.Fatalf("leaves are vacuously empty")
	}
	if File().IsEmpty() {
		t.Fatalf("files are never empty")
	}
	if Text().IsEmpty() || !EmptyText().IsEmpty() {
		t.Fatalf("text emptiness flag ignored")
	}
}

func TestModuleFields(t *testing.T) {
	mod := Module("math", map[string]*Type{"sub": Module("math.sub", nil, nil)}, map[string]*Type{"pi": Number()})
	if got := mod.LoadAttr("pi", nil, "", source.NoLocation); got.Kind != KindNumber {
		t.Fatalf("math.pi = %v", got)
	}
	cl := mod.Clone()
	cl.Mod.Fields["e"] = Number()
	if _, ok := mod.Mod.Fields["e"]; ok || cl.Name() != "math" || cl.Mod.Submodules["sub"] == mod.Mod.Submodules["sub"] {
		t.Fatalf("module clone is not independent")
	}
	if Module("", nil, nil).Name() != "*UnknownModule" {
		t.Fatalf("unnamed module default")
	}
}
