package source

import "testing"

func TestAtRejectsNonPositiveLines(t *testing.T) {
	for _, line := range []int{0, -1, -100} {
		if loc := At(line); loc.IsValid() {
			t.Fatalf("At(%d) = %v, expected NoLocation", line, loc)
		}
	}
	if loc := At(7); loc.Line != 7 || !loc.IsValid() {
		t.Fatalf("expected line 7, got %v", loc)
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{name: "unknown", loc: NoLocation, want: "<unknown>"},
		{name: "line only", loc: At(3), want: "line 3"},
		{name: "line and column", loc: AtCol(3, 9), want: "3:9"},
		{name: "column ignored without line", loc: AtCol(0, 9), want: "<unknown>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	var sp Span
	if !sp.Empty() {
		t.Fatalf("zero span must be empty")
	}
	sp = sp.Cover(At(10)).Cover(NoLocation).Cover(At(4)).Cover(At(12))
	if sp.Start.Line != 4 || sp.End.Line != 12 {
		t.Fatalf("expected 4-12, got %v", sp)
	}
	if got := SpanOf(At(9), At(2)).String(); got != "line 2-line 9" {
		t.Fatalf("unexpected span string %q", got)
	}
}
