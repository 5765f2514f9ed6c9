package diag_test

import (
	"context"
	"errors"
	"testing"

	"blang/internal/diag"
	"blang/internal/source"
)

func TestGatherMergesDeterministically(t *testing.T) {
	// Each producer reports from its own "file"; the merged bag must come out
	// sorted by position no matter how the workers were scheduled.
	bag, err := diag.Gather(context.Background(), 4, 3, 10,
		func(_ context.Context, i int, rep diag.Reporter) error {
			rep.Report(diag.NameNotDefined{
				Name: "x",
				Pos:  source.Span{File: source.FileID(2 - i), Start: 0, End: 1},
			})
			return nil
		})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if bag.Len() != 3 {
		t.Fatalf("Len = %d, want 3", bag.Len())
	}
	for i, d := range bag.Items() {
		if d.Primary.File != source.FileID(i) {
			t.Fatalf("items[%d].File = %d, want %d", i, d.Primary.File, i)
		}
	}
}

func TestGatherPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := diag.Gather(context.Background(), 2, 4, 10,
		func(_ context.Context, i int, _ diag.Reporter) error {
			if i == 2 {
				return boom
			}
			return nil
		})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestGatherNoProducers(t *testing.T) {
	bag, err := diag.Gather(context.Background(), 0, 0, 10,
		func(context.Context, int, diag.Reporter) error { return nil })
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if bag.Len() != 0 {
		t.Fatalf("Len = %d, want 0", bag.Len())
	}
}

func TestGatherCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := diag.Gather(ctx, 1, 2, 10,
		func(ctx context.Context, _ int, _ diag.Reporter) error {
			return ctx.Err()
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
