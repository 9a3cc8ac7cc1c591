package ast

// Syntax is a plain in-memory Node. Fixtures and tests build trees from it;
// production callers usually wrap their parser's nodes instead.
type Syntax struct {
	kind     Kind
	id       string
	name     string
	line     int
	parent   *Syntax
	children []*Syntax
}

func newSyntax(kind Kind, id, name string, line int) *Syntax {
	return &Syntax{kind: kind, id: id, name: name, line: line}
}

// NewNode builds a node of an arbitrary kind.
func NewNode(kind Kind, id string, line int) *Syntax {
	return newSyntax(kind, id, "", line)
}

// NewName builds a Name node referring to id.
func NewName(id string, line int) *Syntax {
	return newSyntax(KindName, id, "", line)
}

// NewFunctionDef builds a function definition named name.
func NewFunctionDef(name string, line int) *Syntax {
	return newSyntax(KindFunctionDef, "", name, line)
}

// NewClassDef builds a class definition named name.
func NewClassDef(name string, line int) *Syntax {
	return newSyntax(KindClassDef, "", name, line)
}

// NewCall builds a call expression whose callee identifier is id.
func NewCall(id string, line int) *Syntax {
	return newSyntax(KindCall, id, "", line)
}

// Add attaches children to s and returns s.
func (s *Syntax) Add(children ...*Syntax) *Syntax {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = s
		s.children = append(s.children, c)
	}
	return s
}

// WithID sets the carried identifier; used for definitions matched by
// placeholder id.
func (s *Syntax) WithID(id string) *Syntax {
	s.id = id
	return s
}

func (s *Syntax) Kind() Kind      { return s.kind }
func (s *Syntax) ID() string      { return s.id }
func (s *Syntax) DefName() string { return s.name }
func (s *Syntax) Line() int       { return s.line }

func (s *Syntax) Parent() Node {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

// Children returns the child nodes in insertion order.
func (s *Syntax) Children() []*Syntax {
	return s.children
}

// Walk visits s and its descendants depth-first, stopping a branch when fn
// returns false.
func (s *Syntax) Walk(fn func(*Syntax) bool) {
	if s == nil || !fn(s) {
		return
	}
	for _, c := range s.children {
		c.Walk(fn)
	}
}
