package types

import "shapecheck/internal/source"

// Effect enumerates what calling a function type does. Built-in container
// methods mutate their receiver; the rest only compute a result.
type Effect uint8

const (
	// EffectConst returns a clone of FnInfo.Returns.
	EffectConst Effect = iota
	// EffectIdentity returns the first argument's type.
	EffectIdentity
	// EffectElement returns the first element type of the first argument.
	EffectElement
	// EffectVoid returns None.
	EffectVoid
	// EffectListAppend widens the receiver list with the argument.
	EffectListAppend
	// EffectMapItems returns a list of (key, value) tuples of the receiver.
	EffectMapItems
	// EffectMapKeys returns a list of the receiver's key type.
	EffectMapKeys
	// EffectMapValues returns a list of the receiver's value type.
	EffectMapValues
)

func (e Effect) String() string {
	switch e {
	case EffectConst:
		return "const"
	case EffectIdentity:
		return "identity"
	case EffectElement:
		return "element"
	case EffectVoid:
		return "void"
	case EffectListAppend:
		return "list.append"
	case EffectMapItems:
		return "map.items"
	case EffectMapKeys:
		return "map.keys"
	case EffectMapValues:
		return "map.values"
	default:
		return "unknown"
	}
}

// FnInfo is the payload of a Function.
type FnInfo struct {
	Name    string
	Effect  Effect
	Returns *Type // EffectConst only
	// Receiver is the container a bound method acts on. It is a reference to
	// the caller's value, never a copy.
	Receiver *Type
}

func (f *FnInfo) clone() *FnInfo {
	if f == nil {
		return &FnInfo{Name: "*Anonymous"}
	}
	out := *f
	if f.Returns != nil {
		out.Returns = f.Returns.Clone()
	}
	return &out
}

func fn(name string, effect Effect, returns, receiver *Type) *Type {
	if name == "" {
		name = "*Anonymous"
	}
	return &Type{Kind: KindFunction, Fn: &FnInfo{Name: name, Effect: effect, Returns: returns, Receiver: receiver}}
}

// Func returns a function that always produces a clone of returns.
func Func(name string, returns *Type) *Type {
	if returns == nil {
		returns = None()
	}
	return fn(name, EffectConst, returns, nil)
}

// IdentityFunc returns a function producing its first argument's type.
func IdentityFunc(name string) *Type { return fn(name, EffectIdentity, nil, nil) }

// ElementFunc returns a function producing the first element type of its
// first argument.
func ElementFunc(name string) *Type { return fn(name, EffectElement, nil, nil) }

// VoidFunc returns a function producing None.
func VoidFunc(name string) *Type { return fn(name, EffectVoid, nil, nil) }

func boundMethod(name string, effect Effect, receiver *Type) *Type {
	return fn(name, effect, nil, receiver)
}

// ReturnType is the result type recorded for the wire form: the fixed
// result of EffectConst functions, None for void ones and nil otherwise.
func (f *FnInfo) ReturnType() *Type {
	switch f.Effect {
	case EffectConst:
		return f.Returns
	case EffectVoid:
		return None()
	default:
		return nil
	}
}

// Call evaluates a call of t with the given argument types. callee names the
// variable the function was loaded from ("" when it was not a variable);
// container methods re-register that variable with the analyzer because a
// differently scoped name may now hold more evidence than before.
func (t *Type) Call(a Analyzer, callee string, args []*Type, pos source.Location) *Type {
	if t.Kind == KindClass {
		return t.Constructor().Call(a, callee, args, pos)
	}
	if t.Kind != KindFunction || t.Fn == nil {
		return Unknown()
	}
	f := t.Fn
	switch f.Effect {
	case EffectConst:
		if f.Returns == nil {
			return None()
		}
		return f.Returns.Clone()
	case EffectIdentity:
		if len(args) == 0 {
			return Unknown()
		}
		return args[0].Clone()
	case EffectElement:
		if len(args) == 0 {
			return Unknown()
		}
		if args[0].Kind == KindTuple && len(args[0].Elems) == 0 {
			return Unknown()
		}
		return args[0].Index(At(0))
	case EffectVoid:
		return None()
	case EffectListAppend:
		listAppend(a, f.Receiver, callee, args, pos)
		return None()
	case EffectMapItems, EffectMapKeys, EffectMapValues:
		return mapView(f.Effect, f.Receiver)
	}
	return Unknown()
}

func listAppend(a Analyzer, receiver *Type, callee string, args []*Type, pos source.Location) {
	if receiver == nil || len(args) == 0 {
		return
	}
	elem := guardCycle(receiver, args[0])
	if callee != "" && a != nil {
		a.AppendVariable(callee, List(elem.Clone(), false), pos)
	}
	receiver.Empty = false
	receiver.Elem = elem
}

func mapView(effect Effect, receiver *Type) *Type {
	if receiver == nil || receiver.Kind != KindMapping {
		return List(nil, true)
	}
	key, value, ok := receiver.firstEntry()
	if !ok {
		if effect == EffectMapItems {
			return List(Tuple(Unknown(), Unknown()), true)
		}
		return List(nil, true)
	}
	switch effect {
	case EffectMapItems:
		return List(Tuple(key, value), false)
	case EffectMapKeys:
		return List(key, false)
	default:
		return List(value, false)
	}
}
