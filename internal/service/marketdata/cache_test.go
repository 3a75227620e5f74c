package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"
)

func frameWith(symbol string) *Frame {
	f := NewFrame()
	f.AddSeries(symbol, bars(100, 110, 120))
	return f
}

func TestGetOrRefreshPopulates(t *testing.T) {
	c := NewMatrixCache(time.Hour)
	calls := 0
	f := c.GetOrRefresh(context.Background(), func(ctx context.Context) (*Frame, error) {
		calls++
		return frameWith("SPY"), nil
	})
	if f == nil {
		t.Fatalf("expected frame")
	}
	if calls != 1 {
		t.Fatalf("expected 1 refresh call, got %d", calls)
	}
}

func TestGetOrRefreshIdempotentWithinTTL(t *testing.T) {
	c := NewMatrixCache(time.Hour)
	calls := 0
	refresh := func(ctx context.Context) (*Frame, error) {
		calls++
		return frameWith("SPY"), nil
	}
	for i := 0; i < 5; i++ {
		if f := c.GetOrRefresh(context.Background(), refresh); f == nil {
			t.Fatalf("expected frame on call %d", i)
		}
	}
	if calls != 1 {
		t.Fatalf("refresh must not re-run within the freshness window, got %d calls", calls)
	}
}

func TestGetOrRefreshExpires(t *testing.T) {
	c := NewMatrixCache(time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	refresh := func(ctx context.Context) (*Frame, error) {
		calls++
		return frameWith("SPY"), nil
	}
	c.GetOrRefresh(context.Background(), refresh)
	now = now.Add(2 * time.Hour)
	c.GetOrRefresh(context.Background(), refresh)
	if calls != 2 {
		t.Fatalf("expected a second refresh after expiry, got %d calls", calls)
	}
}

func TestGetOrRefreshKeepsStaleOnFailure(t *testing.T) {
	c := NewMatrixCache(time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	good := frameWith("SPY")
	c.GetOrRefresh(context.Background(), func(ctx context.Context) (*Frame, error) {
		return good, nil
	})

	now = now.Add(2 * time.Hour)
	f := c.GetOrRefresh(context.Background(), func(ctx context.Context) (*Frame, error) {
		return nil, errors.New("provider down")
	})
	if f != good {
		t.Fatalf("failed refresh must keep the prior matrix")
	}

	// empty result is treated like a failure
	f = c.GetOrRefresh(context.Background(), func(ctx context.Context) (*Frame, error) {
		return NewFrame(), nil
	})
	if f != good {
		t.Fatalf("empty refresh must keep the prior matrix")
	}
}

func TestGetOrRefreshNeverPopulated(t *testing.T) {
	c := NewMatrixCache(time.Hour)
	f := c.GetOrRefresh(context.Background(), func(ctx context.Context) (*Frame, error) {
		return nil, errors.New("provider down")
	})
	if f != nil {
		t.Fatalf("expected nil when never populated, got %v", f)
	}
}
