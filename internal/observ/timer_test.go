package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Add("load-types", 2*time.Millisecond, "")
	tm.Add("merge", time.Millisecond, "3 inputs")

	rep := tm.Report()
	if len(rep.Phases) != 2 || rep.TotalMS != 3 {
		t.Fatalf("unexpected report %+v", rep)
	}
	s := tm.Summary()
	for _, want := range []string{"load-types", "// 3 inputs", "total"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	tm := NewTimer()
	if tm.Len() != 0 || tm.Report().TotalMS != 0 {
		t.Fatal("expected empty timer")
	}
}
