package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"shapecheck/internal/source"
)

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportWarning(BagReporter{Bag: bag}, TypeAppendToNonList, source.At(4), "cannot append").
		WithSubject("a number")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	got := bag.Items()[0]
	if got.Subject != "a number" || got.Primary.Line != 4 || got.Severity != SevWarning {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := range 3 {
		ok := bag.Add(New(SevInfo, TypeInfo, source.At(i+1), "x"))
		if i < 2 && !ok {
			t.Fatalf("add %d rejected", i)
		}
		if i == 2 && ok {
			t.Fatalf("expected limit to reject third diagnostic")
		}
	}
	if bag.Len() != 2 || bag.Dropped() != 1 {
		t.Fatalf("expected 2 kept and 1 dropped, got %d and %d", bag.Len(), bag.Dropped())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	d := New(SevError, MatchConflict, source.At(2), "placeholder bound twice")
	r.Report(d)
	r.Report(d)
	r.Report(New(SevError, MatchConflict, source.At(3), "placeholder bound twice"))
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestSortAndGolden(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, TypeIncompatible, source.At(9), "late"))
	bag.Add(New(SevInfo, TypeInfo, source.At(1), "early"))
	bag.Add(New(SevError, TypeAppendToNonList, source.At(1), "early\nerror").WithNote(source.At(2), "declared here"))
	bag.Sort()

	want := "error TYP1001 line 1 early error\n" +
		"note TYP1001 line 2 declared here\n" +
		"info TYP1000 line 1 early\n" +
		"warning TYP1002 line 9 late"
	if got := FormatGolden(bag.Items()); got != want {
		t.Fatalf("unexpected golden output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestPrettyWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	err := Pretty(&buf, []Diagnostic{New(SevError, MatchConflict, source.NoLocation, "total bound to sum and count")})
	if err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "error MAT2001 <unknown>: total bound") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestCodeIDs(t *testing.T) {
	if TypeAppendToNonList.ID() != "TYP1001" || MatchConflict.ID() != "MAT2001" || IOLoadFailed.ID() != "IO4001" {
		t.Fatalf("unexpected code ids")
	}
	if Code(9999).Title() != "Unknown error" {
		t.Fatalf("unknown codes must fall back to the generic title")
	}
}
