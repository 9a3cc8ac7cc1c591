package driver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"shapecheck/internal/diag"
	"shapecheck/internal/source"
	"shapecheck/internal/trace"
	"shapecheck/internal/typecache"
	"shapecheck/internal/typecodec"
	"shapecheck/internal/types"
)

// TypeFile is the result of loading one file of type records.
type TypeFile struct {
	Path    string
	Digest  typecache.Digest
	Records []*typecodec.Record
	// Types holds one entry per record; records that failed to decode are
	// nil and have a diagnostic in Bag.
	Types  []*types.Type
	Cached bool
	Bag    *diag.Bag
}

// Decoded returns the successfully decoded types.
func (f *TypeFile) Decoded() []*types.Type {
	out := make([]*types.Type, 0, len(f.Types))
	for _, t := range f.Types {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// LoadTypeRecords reads JSON type records from every path concurrently.
// Unreadable or undecodable input becomes a diagnostic in that file's bag;
// only cancellation and cache write failures are returned as errors.
func LoadTypeRecords(ctx context.Context, paths []string, opts Options) ([]TypeFile, error) {
	results := make([]TypeFile, len(paths))
	err := opts.phase(ctx, "load-types", func(ctx context.Context) (string, error) {
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
				res, err := loadTypeFile(gctx, path, opts)
				results[i] = res
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
		return strconv.Itoa(len(paths)) + " files", nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func loadTypeFile(ctx context.Context, path string, opts Options) (TypeFile, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "types "+path, trace.CurrentSpan(ctx))
	bag, r := opts.newSink()
	res := TypeFile{Path: path, Bag: bag}
	defer func() { span.End(fmt.Sprintf("%d records, cached=%t", len(res.Records), res.Cached)) }()

	data, err := os.ReadFile(path)
	if err != nil {
		diag.ReportError(r, diag.IOLoadFailed, source.NoLocation, err.Error()).WithSubject(path).Emit()
		return res, nil
	}
	res.Digest = typecache.Sum(path, data)

	if entry, ok, err := opts.Cache.Get(res.Digest); err != nil {
		diag.ReportWarning(r, diag.IOCacheCorrupt, source.NoLocation, err.Error()).WithSubject(path).Emit()
	} else if ok {
		res.Records = entry.Records
		res.Cached = true
	}

	if !res.Cached {
		recs, err := typecodec.RecordsFromJSON(data)
		if err != nil {
			diag.ReportError(r, diag.IODecodeFailed, source.NoLocation, err.Error()).WithSubject(path).Emit()
			return res, nil
		}
		res.Records = recs
	}

	res.Types = make([]*types.Type, len(res.Records))
	decodedAll := true
	for i, rec := range res.Records {
		t, err := typecodec.Decode(rec)
		if err != nil {
			decodedAll = false
			diag.ReportError(r, diag.IODecodeFailed, source.NoLocation,
				fmt.Sprintf("record %d: %v", i, err)).WithSubject(path).Emit()
			continue
		}
		res.Types[i] = t
	}

	if !res.Cached && decodedAll {
		if err := opts.Cache.Put(res.Digest, &typecache.Entry{Source: path, Records: res.Records}); err != nil {
			return res, fmt.Errorf("cache %s: %w", path, err)
		}
	}
	return res, nil
}
