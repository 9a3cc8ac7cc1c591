package source

import "fmt"

// Span covers a range of lines, inclusive on both ends.
type Span struct {
	Start Location
	End   Location
}

// SpanOf builds a span from two locations, ordering them.
func SpanOf(a, b Location) Span {
	if b.Before(a) {
		a, b = b, a
	}
	return Span{Start: a, End: b}
}

func (s Span) Empty() bool {
	return !s.Start.IsValid()
}

func (s Span) String() string {
	if s.Empty() {
		return NoLocation.String()
	}
	if s.Start == s.End {
		return s.Start.String()
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Cover widens s so that it also contains loc. Invalid locations are ignored.
func (s Span) Cover(loc Location) Span {
	if !loc.IsValid() {
		return s
	}
	if s.Empty() {
		return Span{Start: loc, End: loc}
	}
	if loc.Before(s.Start) {
		s.Start = loc
	}
	if s.End.Before(loc) {
		s.End = loc
	}
	return s
}
