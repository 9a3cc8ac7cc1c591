package types

import "slices"

// aliases lists, per variant, every external name that identifies it: the
// canonical variant name, the submission language's runtime type names and
// the legacy class names used by older serialized records. The table is
// indexed by Kind, so every variant has an entry.
var aliases = [kindCount][]string{
	KindUnknown:   {"Unknown", "unknown", "UnknownType"},
	KindRecursed:  {"Recursed", "recursed", "RecursedType"},
	KindNumber:    {"Number", "num", "int", "float", "complex", "numbers.Number", "NumType"},
	KindBoolean:   {"Boolean", "bool", "BoolType"},
	KindText:      {"Text", "str", "StrType"},
	KindNone:      {"None", "NoneType"},
	KindFile:      {"File", "file", "FileType"},
	KindTime:      {"Time", "time", "TimeType"},
	KindDay:       {"Day", "day", "DayType"},
	KindTuple:     {"Tuple", "tuple", "TupleType"},
	KindList:      {"List", "list", "ListType"},
	KindSet:       {"Set", "set", "SetType"},
	KindGenerator: {"Generator", "generator", "GeneratorType"},
	KindMapping:   {"Mapping", "dict", "DictType"},
	KindFunction:  {"Function", "function", "FunctionType"},
	KindClass:     {"Class", "class", "ClassType"},
	KindInstance:  {"Instance", "instance", "InstanceType"},
	KindModule:    {"Module", "module", "ModuleType"},
}

var kindByAlias = buildAliasIndex()

func buildAliasIndex() map[string]Kind {
	idx := make(map[string]Kind, int(kindCount)*4)
	for k := range kindCount {
		if len(aliases[k]) == 0 || aliases[k][0] != k.String() {
			panic("types: alias table must start with the canonical name of " + k.String())
		}
		for _, name := range aliases[k] {
			if prev, dup := idx[name]; dup {
				panic("types: alias " + name + " registered for both " + prev.String() + " and " + k.String())
			}
			idx[name] = k
		}
	}
	return idx
}

// Aliases returns the registered names of k, canonical name first.
func Aliases(k Kind) []string {
	if k >= kindCount {
		return nil
	}
	return slices.Clone(aliases[k])
}

// KindByName resolves a registered name back to its variant.
func KindByName(name string) (Kind, bool) {
	k, ok := kindByAlias[name]
	return k, ok
}

func hasAlias(k Kind, name string) bool {
	if k >= kindCount {
		return false
	}
	return slices.Contains(aliases[k], name)
}
