package updates

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/weekly/internal/compose"
)

// BatchResult is the outcome of one request in a batch. Exactly one of
// Document and Error is set.
type BatchResult struct {
	Index    int               `json:"index"`
	Document *compose.Document `json:"document,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ComposeBatch composes reqs with at most limit compositions in flight.
// Results keep input order. Per-request failures are reported in their
// result; the returned error is non-nil only when ctx ends first.
func ComposeBatch(ctx context.Context, sys System, reqs []Request, limit int) ([]BatchResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			doc, err := sys.Compose(gctx, req)
			results[i] = BatchResult{Index: i, Document: doc}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
