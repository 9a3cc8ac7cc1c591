package trace

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
)

// Recorder is the concrete tracer. It writes events to a stream, keeps the
// most recent ones in a ring, or both.
type Recorder struct {
	level  Level
	format Format

	mu   sync.Mutex
	seq  uint64
	w    io.Writer
	ring []Event
	head int
	full bool
}

// NewStream returns a recorder writing each event to w as it arrives.
func NewStream(w io.Writer, level Level, format Format) *Recorder {
	return &Recorder{level: level, format: format, w: w}
}

// NewRing returns a recorder that keeps the last capacity events in memory.
func NewRing(capacity int, level Level) *Recorder {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &Recorder{level: level, ring: make([]Event, capacity)}
}

func (r *Recorder) Level() Level { return r.level }

// Streams reports whether events are written out as they arrive.
func (r *Recorder) Streams() bool { return r.w != nil }

func (r *Recorder) Emit(ev *Event) {
	if !r.level.Allows(ev.Scope) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	stored := *ev
	stored.Seq = r.seq
	if r.w != nil {
		// trace output is best-effort
		_, _ = r.w.Write(stored.Encode(r.format))
	}
	if len(r.ring) > 0 {
		r.ring[r.head] = stored
		r.head = (r.head + 1) % len(r.ring)
		r.full = r.full || r.head == 0
	}
}

// Snapshot returns the buffered events, oldest first.
func (r *Recorder) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return slices.Clone(r.ring[:r.head])
	}
	out := make([]Event, 0, len(r.ring))
	out = append(out, r.ring[r.head:]...)
	return append(out, r.ring[:r.head]...)
}

// Dump writes the buffered events to w.
func (r *Recorder) Dump(w io.Writer, format Format) error {
	for _, ev := range r.Snapshot() {
		if _, err := w.Write(ev.Encode(format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Mode selects where a recorder built by New keeps events.
type Mode uint8

const (
	ModeStream Mode = iota + 1
	ModeRing
	ModeBoth
)

func (m Mode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	}
	return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

const defaultRingSize = 4096

type Config struct {
	Level  Level
	Mode   Mode
	Format Format
	// Output wins over OutputPath; "" and "-" mean stderr.
	Output     io.Writer
	OutputPath string
	RingSize   int
}

// New builds a tracer from cfg. LevelOff yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
		format = FormatNDJSON
	}
	rec := &Recorder{level: cfg.Level, format: format}
	if cfg.Mode == ModeRing || cfg.Mode == ModeBoth {
		rec.ring = NewRing(cfg.RingSize, cfg.Level).ring
	}
	switch cfg.Mode {
	case ModeStream, ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		rec.w = w
	case ModeRing:
	default:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}
	return rec, nil
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return struct{ io.Writer }{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
