// Package driver loads type records and ledger fixtures from disk and runs
// the merge and reporting steps on them. It is the only layer that does I/O
// or concurrency; the lattice and the ledger stay synchronous.
package driver

import (
	"context"
	"runtime"
	"time"

	"shapecheck/internal/diag"
	"shapecheck/internal/trace"
	"shapecheck/internal/typecache"
)

// Options configures the loaders.
type Options struct {
	// Jobs bounds concurrent file loads; zero means GOMAXPROCS.
	Jobs int
	// MaxIssues bounds each per-file diagnostic bag.
	MaxIssues int
	// Dedup drops repeated diagnostics within a file.
	Dedup bool
	// Cache, when set, is consulted before decoding type records.
	Cache *typecache.Cache
	// Observer receives phase boundaries.
	Observer PhaseObserver
}

func (o Options) jobs(n int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, n))
}

// newSink returns a bag and the reporter that feeds it.
func (o Options) newSink() (*diag.Bag, diag.Reporter) {
	bag := diag.NewBag(o.MaxIssues)
	var r diag.Reporter = diag.BagReporter{Bag: bag}
	if o.Dedup {
		r = diag.NewDedupReporter(r)
	}
	return bag, r
}

// phase wraps fn in a pass-scope span and observer events.
func (o Options) phase(ctx context.Context, name string, fn func(ctx context.Context) (string, error)) error {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePhase, name, trace.CurrentSpan(ctx))
	o.Observer.emit(PhaseEvent{Name: name, Status: PhaseStart})
	start := time.Now()
	detail, err := fn(trace.WithSpan(ctx, span))
	if err != nil {
		span.WithExtra("error", err.Error())
	}
	span.End(detail)
	o.Observer.emit(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
	return err
}
