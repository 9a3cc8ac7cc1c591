package driver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"shapecheck/internal/ledger"
	"shapecheck/internal/trace"
)

// LedgerFile is one loaded fixture.
type LedgerFile struct {
	Path   string
	Name   string
	Ledger *ledger.Ledger
}

// LoadLedgers reads and replays fixtures concurrently. Any unreadable or
// malformed fixture fails the whole load: a fixture is a recorded matcher
// run, and a broken one is a bug in whatever produced it.
func LoadLedgers(ctx context.Context, paths []string, opts Options) ([]LedgerFile, error) {
	results := make([]LedgerFile, len(paths))
	err := opts.phase(ctx, "load-ledgers", func(ctx context.Context) (string, error) {
		if len(paths) == 0 {
			return "no files", nil
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.jobs(len(paths)))
		for i, path := range paths {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				res, err := loadLedgerFile(gctx, path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
		return strconv.Itoa(len(paths)) + " fixtures", nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func loadLedgerFile(ctx context.Context, path string) (LedgerFile, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "ledger "+path, trace.CurrentSpan(ctx))
	detail := "failed"
	defer func() { span.End(detail) }()

	data, err := os.ReadFile(path)
	if err != nil {
		return LedgerFile{}, err
	}
	fx, err := ParseFixture(data)
	if err != nil {
		return LedgerFile{}, fmt.Errorf("parse fixture: %w", err)
	}
	l, err := fx.Build()
	if err != nil {
		return LedgerFile{}, err
	}
	name := fx.Name
	if name == "" {
		name = path
	}
	detail = fmt.Sprintf("%d pairings, %d conflicts", l.Len(), len(l.ConflictKeys()))
	return LedgerFile{Path: path, Name: name, Ledger: l}, nil
}
