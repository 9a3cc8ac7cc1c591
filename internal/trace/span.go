package trace

import (
	"sync/atomic"
	"time"
)

var spanIDs atomic.Uint64

// Span brackets one operation with begin and end events. A span begun on a
// disabled tracer, or filtered by level, is inert and has id 0.
type Span struct {
	t      Tracer
	id     uint64
	parent uint64
	scope  Scope
	name   string
	start  time.Time
	extra  map[string]string
}

func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !Enabled(t) || !t.Level().Allows(scope) {
		return &Span{}
	}
	s := &Span{t: t, id: spanIDs.Add(1), parent: parent, scope: scope, name: name, start: time.Now()}
	t.Emit(&Event{Time: s.start, Kind: EventBegin, Scope: scope, Span: s.id, Parent: parent, Name: name})
	return s
}

// End emits the end event and returns the span's duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.t == nil {
		return 0
	}
	now := time.Now()
	s.t.Emit(&Event{
		Time: now, Kind: EventEnd, Scope: s.scope, Span: s.id, Parent: s.parent,
		Name: s.name, Detail: detail, Extra: s.extra,
	})
	return now.Sub(s.start)
}

// WithExtra attaches a key/value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.t == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 1)
	}
	s.extra[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits a single instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !Enabled(t) || !t.Level().Allows(scope) {
		return
	}
	t.Emit(&Event{Time: time.Now(), Kind: EventPoint, Scope: scope, Parent: parent, Name: name, Detail: detail})
}
