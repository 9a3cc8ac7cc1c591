package types

import (
	"fmt"
	"sort"

	"shapecheck/internal/diag"
	"shapecheck/internal/source"
)

// methodSpec builds the function type of a built-in method on demand.
type methodSpec func(name string) *Type

func returning(ctor func() *Type) methodSpec {
	return func(name string) *Type { return Func(name, ctor()) }
}

func returningVoid() methodSpec {
	return func(name string) *Type { return VoidFunc(name) }
}

func listOfText() *Type { return List(Text(), false) }

var textMethods = map[string]methodSpec{
	"capitalize": returning(Text),
	"center":     returning(Text),
	"expandtabs": returning(Text),
	"join":       returning(Text),
	"ljust":      returning(Text),
	"lower":      returning(Text),
	"lstrip":     returning(Text),
	"replace":    returning(Text),
	"rjust":      returning(Text),
	"rstrip":     returning(Text),
	"strip":      returning(Text),
	"swapcase":   returning(Text),
	"title":      returning(Text),
	"translate":  returning(Text),
	"upper":      returning(Text),
	"zfill":      returning(Text),

	"count":  returning(Number),
	"find":   returning(Number),
	"rfind":  returning(Number),
	"index":  returning(Number),
	"rindex": returning(Number),

	"startswith": returning(Boolean),
	"endswith":   returning(Boolean),
	"isalnum":    returning(Boolean),
	"isalpha":    returning(Boolean),
	"isdigit":    returning(Boolean),
	"islower":    returning(Boolean),
	"isspace":    returning(Boolean),
	"istitle":    returning(Boolean),
	"isupper":    returning(Boolean),

	"rsplit":     returning(listOfText),
	"split":      returning(listOfText),
	"splitlines": returning(listOfText),
}

var fileMethods = map[string]methodSpec{
	"close":     returningVoid(),
	"read":      returning(Text),
	"readlines": returning(listOfText),
}

// Field returns the attribute attr of t when t declares one.
func (t *Type) Field(attr string) (*Type, bool) {
	switch t.Kind {
	case KindText:
		if spec, ok := textMethods[attr]; ok {
			return spec(attr), true
		}
	case KindFile:
		if spec, ok := fileMethods[attr]; ok {
			return spec(attr), true
		}
	case KindModule:
		f, ok := t.Mod.Fields[attr]
		return f, ok
	case KindClass, KindInstance:
		if info := t.Class.Info(); info != nil {
			f, ok := info.Fields[attr]
			return f, ok
		}
	}
	return nil, false
}

// Fields returns the attribute names t declares, sorted.
func (t *Type) Fields() []string {
	var names []string
	switch t.Kind {
	case KindText:
		for name := range textMethods {
			names = append(names, name)
		}
	case KindFile:
		for name := range fileMethods {
			names = append(names, name)
		}
	case KindModule:
		for name := range t.Mod.Fields {
			names = append(names, name)
		}
	case KindClass, KindInstance:
		if info := t.Class.Info(); info != nil {
			for name := range info.Fields {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// LoadAttr returns the type of t.attr. Container methods come back as
// function types bound to t, so calling them updates t in place.
//
// Loading append from anything that is not list-like is reported through the
// analyzer's issue sink; the result is Unknown either way and the walk goes
// on. Other unrecognised attributes are Unknown without an issue.
func (t *Type) LoadAttr(attr string, a Analyzer, callee string, pos source.Location) *Type {
	switch {
	case t.Kind.listLike() && attr == "append":
		return boundMethod(attr, EffectListAppend, t)
	case t.Kind == KindMapping:
		switch attr {
		case "items":
			return boundMethod(attr, EffectMapItems, t)
		case "keys":
			return boundMethod(attr, EffectMapKeys, t)
		case "values":
			return boundMethod(attr, EffectMapValues, t)
		}
	}
	if f, ok := t.Field(attr); ok {
		return f
	}
	if attr == "append" && a != nil {
		caller := a.IdentifyCaller(callee)
		diag.ReportWarning(a.Reporter(), diag.TypeAppendToNonList, pos,
			fmt.Sprintf("attempted to append to %s, which is %s rather than a list", caller, t.Description())).
			WithSubject(t.Description()).
			Emit()
	}
	return Unknown()
}
