// Package trace records spans around the I/O-bound phases of a shapecheck
// run: loading files, decoding type records and merging ledgers. The lattice
// and ledger packages never trace.
//
// A tracer travels in the context:
//
//	ctx = trace.WithTracer(ctx, rec)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "merge", trace.CurrentSpan(ctx))
//	defer span.End("")
//
// From the CLI:
//
//	shapecheck ledger merge --trace=- --trace-level=detail a.json b.json
package trace

import (
	"context"
	"fmt"
	"strings"
)

// Tracer consumes events. Emit must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
	Flush() error
	Close() error
}

// Enabled reports whether t records anything at all.
func Enabled(t Tracer) bool { return t != nil && t.Level() > LevelOff }

// Level is the verbosity threshold of a tracer.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelPhase  // commands and phases
	LevelDetail // plus individual files
	LevelDebug  // plus records and merged inputs
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// ParseLevel accepts a level name in any case; "" means off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether events of scope pass the threshold.
func (l Level) Allows(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePhase
	case LevelDetail:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	}
	return false
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1
	ScopePhase
	ScopeFile
	ScopeRecord
)

func (s Scope) String() string {
	switch s {
	case ScopeCommand:
		return "command"
	case ScopePhase:
		return "phase"
	case ScopeFile:
		return "file"
	case ScopeRecord:
		return "record"
	}
	return "unknown"
}

type nopTracer struct{}

func (nopTracer) Emit(*Event)  {}
func (nopTracer) Level() Level { return LevelOff }
func (nopTracer) Flush() error { return nil }
func (nopTracer) Close() error { return nil }

// Nop discards everything.
var Nop Tracer = nopTracer{}

type tracerKey struct{}
type spanKey struct{}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// CurrentSpan is the id of the innermost span attached to ctx, or 0.
func CurrentSpan(ctx context.Context) uint64 {
	if ctx != nil {
		if id, ok := ctx.Value(spanKey{}).(uint64); ok {
			return id
		}
	}
	return 0
}

// WithSpan makes s the parent of spans begun from the returned context.
func WithSpan(ctx context.Context, s *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, s.ID())
}
