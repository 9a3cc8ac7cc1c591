package driver

import (
	"fmt"
	"maps"
	"slices"

	"shapecheck/internal/diag"
	"shapecheck/internal/source"
	"shapecheck/internal/types"
)

// Session is a minimal variable scope that satisfies types.Analyzer and
// types.VariableOracle. It lets tooling bind decoded types to names and
// evaluate attribute loads and calls against them the way a flow analyzer
// would.
type Session struct {
	reporter diag.Reporter
	vars     map[string]*types.Type
	defined  map[string]source.Location
}

// NewSession creates an empty scope reporting into r.
func NewSession(r diag.Reporter) *Session {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Session{
		reporter: r,
		vars:     make(map[string]*types.Type),
		defined:  make(map[string]source.Location),
	}
}

func (s *Session) Reporter() diag.Reporter { return s.reporter }

// Bind stores t under name with mutable-use semantics: lists and mappings
// are shared with the caller, immutable values are copied.
func (s *Session) Bind(name string, t *types.Type, at source.Location) {
	s.vars[name] = t.CloneForMutableUse()
	s.defined[name] = at
}

func (s *Session) IdentifyCaller(callee string) string {
	if callee == "" {
		return "a value"
	}
	return fmt.Sprintf("the variable %q", callee)
}

// AppendVariable re-registers a variable after a container method widened
// it.
func (s *Session) AppendVariable(name string, t *types.Type, at source.Location) {
	s.Bind(name, t, at)
}

func (s *Session) LookupType(name string) (*types.Type, bool) {
	t, ok := s.vars[name]
	return t, ok
}

// DefinedAt is where name was last bound.
func (s *Session) DefinedAt(name string) (source.Location, bool) {
	loc, ok := s.defined[name]
	return loc, ok
}

// Names lists the bound variables, sorted.
func (s *Session) Names() []string {
	return slices.Sorted(maps.Keys(s.vars))
}

// LoadAttr evaluates name.attr.
func (s *Session) LoadAttr(name, attr string, at source.Location) *types.Type {
	t, ok := s.vars[name]
	if !ok {
		return types.Unknown()
	}
	return t.LoadAttr(attr, s, name, at)
}

// CallAttr evaluates name.attr(args...).
func (s *Session) CallAttr(name, attr string, args []*types.Type, at source.Location) *types.Type {
	return s.LoadAttr(name, attr, at).Call(s, name, args, at)
}
