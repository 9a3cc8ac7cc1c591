package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"shapecheck/internal/ast"
	"shapecheck/internal/ledger"
)

// Fixture is the on-disk form of one match attempt: the nodes involved and
// the bindings a matcher committed between them. Node references are the
// fixture-local Ref strings.
type Fixture struct {
	Name        string        `json:"name"`
	Nodes       []FixtureNode `json:"nodes"`
	Variables   []Binding     `json:"variables"`
	Functions   []Binding     `json:"functions"`
	Classes     []Binding     `json:"classes"`
	Expressions []Binding     `json:"expressions"`
	Pairings    []Pairing     `json:"pairings"`
	Root        string        `json:"root,omitempty"`
	Diagnosis   string        `json:"diagnosis,omitempty"`
}

// FixtureNode describes one node. Kind uses ast kind names ("Name", "Call",
// "FunctionDef", ...).
type FixtureNode struct {
	Ref    string `json:"ref"`
	Kind   string `json:"kind"`
	ID     string `json:"id,omitempty"`
	Def    string `json:"def,omitempty"`
	Line   int    `json:"line,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// Binding binds a placeholder, named either directly by Key or through the
// instructor node Ins, to the student node Node.
type Binding struct {
	Key  string `json:"key,omitempty"`
	Ins  string `json:"ins,omitempty"`
	Node string `json:"node"`
}

// Pairing records a raw instructor/student node correspondence.
type Pairing struct {
	Ins  string `json:"ins"`
	Node string `json:"node"`
}

var errUnknownRef = errors.New("unknown node reference")

// ParseFixture decodes a fixture document.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Build creates the fixture's nodes and replays its bindings into a new
// ledger. Ledger contract violations are returned unchanged so callers can
// match them with errors.Is.
func (f *Fixture) Build() (*ledger.Ledger, error) {
	nodes, err := f.buildNodes()
	if err != nil {
		return nil, err
	}
	lookup := func(ref string) (ast.Node, error) {
		if ref == "" {
			return nil, nil
		}
		n, ok := nodes[ref]
		if !ok {
			return nil, fmt.Errorf("%w %q", errUnknownRef, ref)
		}
		return n, nil
	}

	l := ledger.New()
	adders := []struct {
		table    string
		bindings []Binding
		byNode   func(ins, std ast.Node) (int, error)
		byKey    func(key string, std ast.Node) (int, error)
	}{
		{"variable", f.Variables, l.AddVariable, l.AddVariableKey},
		{"function", f.Functions, l.AddFunction, l.AddFunctionKey},
		{"class", f.Classes, l.AddClass, l.AddClassKey},
	}
	for _, a := range adders {
		for i, b := range a.bindings {
			std, err := lookup(b.Node)
			if err != nil {
				return nil, fmt.Errorf("%s binding %d: %w", a.table, i, err)
			}
			if b.Key != "" {
				_, err = a.byKey(b.Key, std)
			} else {
				var ins ast.Node
				if ins, err = lookup(b.Ins); err == nil {
					_, err = a.byNode(ins, std)
				}
			}
			if err != nil {
				return nil, fmt.Errorf("%s binding %d: %w", a.table, i, err)
			}
		}
	}
	for i, b := range f.Expressions {
		std, err := lookup(b.Node)
		if err != nil {
			return nil, fmt.Errorf("expression binding %d: %w", i, err)
		}
		if b.Key != "" {
			err = l.AddExpressionKey(b.Key, std)
		} else {
			var ins ast.Node
			if ins, err = lookup(b.Ins); err == nil {
				err = l.AddExpression(ins, std)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("expression binding %d: %w", i, err)
		}
	}
	for i, p := range f.Pairings {
		ins, err := lookup(p.Ins)
		if err != nil {
			return nil, fmt.Errorf("pairing %d: %w", i, err)
		}
		std, err := lookup(p.Node)
		if err != nil {
			return nil, fmt.Errorf("pairing %d: %w", i, err)
		}
		if err := l.AddNodePairing(ins, std); err != nil {
			return nil, fmt.Errorf("pairing %d: %w", i, err)
		}
	}
	if f.Root != "" {
		root, err := lookup(f.Root)
		if err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
		l.SetRoot(root)
	}
	l.SetDiagnosis(f.Diagnosis)
	return l, nil
}

func (f *Fixture) buildNodes() (map[string]*ast.Syntax, error) {
	nodes := make(map[string]*ast.Syntax, len(f.Nodes))
	for _, n := range f.Nodes {
		if n.Ref == "" {
			return nil, errors.New("node without ref")
		}
		if _, dup := nodes[n.Ref]; dup {
			return nil, fmt.Errorf("duplicate node ref %q", n.Ref)
		}
		kind := ast.ParseKind(n.Kind)
		var s *ast.Syntax
		switch kind {
		case ast.KindFunctionDef:
			s = ast.NewFunctionDef(n.Def, n.Line).WithID(n.ID)
		case ast.KindClassDef:
			s = ast.NewClassDef(n.Def, n.Line).WithID(n.ID)
		default:
			s = ast.NewNode(kind, n.ID, n.Line)
		}
		nodes[n.Ref] = s
	}
	for _, n := range f.Nodes {
		if n.Parent == "" {
			continue
		}
		parent, ok := nodes[n.Parent]
		if !ok {
			return nil, fmt.Errorf("node %q: parent: %w %q", n.Ref, errUnknownRef, n.Parent)
		}
		parent.Add(nodes[n.Ref])
	}
	return nodes, nil
}
