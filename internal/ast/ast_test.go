package ast

import "testing"

func TestParseKindRoundTrip(t *testing.T) {
	for k := KindModule; k < KindOther; k++ {
		if got := ParseKind(k.String()); got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if ParseKind("Lambda") != KindOther || ParseKind("Invalid") != KindOther {
		t.Fatalf("unknown names must map to KindOther")
	}
}

func TestParentLinks(t *testing.T) {
	call := NewCall("total", 3)
	name := NewName("total", 3)
	call.Add(name, nil)

	if name.Parent() != Node(call) {
		t.Fatalf("expected call as parent")
	}
	if call.Parent() != nil {
		t.Fatalf("root must have a nil parent interface")
	}
	if len(call.Children()) != 1 {
		t.Fatalf("nil children must be skipped")
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{NewFunctionDef("compute", 1), "compute"},
		{NewClassDef("Dog", 1), "Dog"},
		{NewName("x", 2), "x"},
		{NewCall("print", 2), "print"},
	}
	for _, tt := range tests {
		if got := Identifier(tt.node); got != tt.want {
			t.Fatalf("Identifier(%v) = %q, want %q", tt.node.Kind(), got, tt.want)
		}
	}
	var missing *Syntax
	if !IsNil(missing) || Identifier(missing) != "" {
		t.Fatalf("typed nil must be treated as nil")
	}
}

func TestWalk(t *testing.T) {
	root := NewNode(KindModule, "", 0).Add(
		NewFunctionDef("f", 1).Add(NewName("a", 2)),
		NewName("b", 4),
	)
	var seen []string
	root.Walk(func(s *Syntax) bool {
		seen = append(seen, s.Kind().String())
		return s.Kind() != KindFunctionDef
	})
	want := []string{"Module", "FunctionDef", "Name"}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("visited %v, want %v", seen, want)
		}
	}
}
