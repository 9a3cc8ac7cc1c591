package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

type EventKind uint8

const (
	EventBegin EventKind = iota + 1
	EventEnd
	EventPoint
)

func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "begin"
	case EventEnd:
		return "end"
	case EventPoint:
		return "point"
	}
	return "unknown"
}

// Event is one trace record. Seq is assigned by the recorder that keeps it.
type Event struct {
	Time   time.Time
	Seq    uint64
	Kind   EventKind
	Scope  Scope
	Span   uint64
	Parent uint64
	Name   string
	Detail string
	Extra  map[string]string
}

type Format uint8

const (
	FormatText Format = iota
	FormatNDJSON
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatText, fmt.Errorf("invalid trace format: %q (expected: text|ndjson)", s)
}

// Encode renders ev as one line in format.
func (ev *Event) Encode(format Format) []byte {
	if format == FormatNDJSON {
		return ev.ndjson()
	}
	return ev.text()
}

type wireEvent struct {
	Time   string            `json:"time"`
	Seq    uint64            `json:"seq"`
	Kind   string            `json:"kind"`
	Scope  string            `json:"scope"`
	Span   uint64            `json:"span,omitempty"`
	Parent uint64            `json:"parent,omitempty"`
	Name   string            `json:"name"`
	Detail string            `json:"detail,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

func (ev *Event) ndjson() []byte {
	data, err := json.Marshal(wireEvent{
		Time:   ev.Time.UTC().Format(time.RFC3339Nano),
		Seq:    ev.Seq,
		Kind:   ev.Kind.String(),
		Scope:  ev.Scope.String(),
		Span:   ev.Span,
		Parent: ev.Parent,
		Name:   ev.Name,
		Detail: ev.Detail,
		Extra:  ev.Extra,
	})
	if err != nil {
		return nil
	}
	return append(data, '\n')
}

// text renders "seq +name (detail) k=v"; begin is "+", end "-", point ".".
func (ev *Event) text() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%6d %-7s", ev.Seq, ev.Scope)
	switch ev.Kind {
	case EventBegin:
		b.WriteString(" + ")
	case EventEnd:
		b.WriteString(" - ")
	default:
		b.WriteString(" . ")
	}
	b.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&b, " (%s)", ev.Detail)
	}
	for _, k := range slices.Sorted(maps.Keys(ev.Extra)) {
		fmt.Fprintf(&b, " %s=%s", k, ev.Extra[k])
	}
	b.WriteByte('\n')
	return []byte(b.String())
}
