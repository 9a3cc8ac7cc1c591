package driver

import (
	"context"
	"fmt"
	"strconv"

	"shapecheck/internal/diag"
	"shapecheck/internal/ledger"
	"shapecheck/internal/trace"
)

// MergeResult is the outcome of MergeAll.
type MergeResult struct {
	Ledger *ledger.Ledger
	// NewConflicts[i] is the number of conflicts merging input i added.
	NewConflicts []int
	Bag          *diag.Bag
}

// MergeAll folds the inputs, in order, into a fresh ledger without
// modifying them, then reports the merged conflicts. Merging is sequential.
func MergeAll(ctx context.Context, files []LedgerFile, opts Options) (*MergeResult, error) {
	bag, r := opts.newSink()
	res := &MergeResult{Ledger: ledger.New(), NewConflicts: make([]int, len(files)), Bag: bag}
	err := opts.phase(ctx, "merge", func(ctx context.Context) (string, error) {
		tracer := trace.FromContext(ctx)
		parent := trace.CurrentSpan(ctx)
		for i, f := range files {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			before := len(res.Ledger.ConflictKeys())
			res.Ledger.MergeWith(f.Ledger)
			res.NewConflicts[i] = len(res.Ledger.ConflictKeys()) - before
			trace.Point(tracer, trace.ScopeRecord, "merge "+f.Name,
				fmt.Sprintf("+%d conflicts", res.NewConflicts[i]), parent)
		}
		res.Ledger.ReportConflicts(r)
		return strconv.Itoa(len(res.Ledger.ConflictKeys())) + " conflicts", nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
