package diag

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Gather runs n issue producers concurrently, at most jobs at a time, and
// merges their output deterministically. Every producer owns its private Bag
// (through the Reporter it receives), so no locking is needed; bags are merged
// in producer index order and the result is sorted by source position, making
// the report independent of scheduling.
//
// jobs <= 0 means one worker per available CPU. A producer error cancels the
// remaining work and is returned as-is.
func Gather(ctx context.Context, jobs, n, maxPerProducer int, produce func(ctx context.Context, i int, rep Reporter) error) (*Bag, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	bags := make([]*Bag, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := NewBag(maxPerProducer)
			bags[i] = bag
			return produce(gctx, i, BagReporter{Bag: bag})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := NewBag(0)
	for _, bag := range bags {
		out.Merge(bag)
	}
	out.Sort()
	return out, nil
}
