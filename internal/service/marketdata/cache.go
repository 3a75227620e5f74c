package marketdata

import (
	"context"
	"sync"
	"time"
)

// RefreshFunc rebuilds the benchmark price matrix from the provider.
type RefreshFunc func(ctx context.Context) (*Frame, error)

// MatrixCache owns the process-wide benchmark price matrix: the current
// value, its fetch timestamp, and the freshness window. A failed refresh
// keeps the prior value untouched (stale-but-available), it never clears a
// valid matrix.
type MatrixCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	frame     *Frame
	fetchedAt time.Time

	now func() time.Time // stubbed in tests
}

func NewMatrixCache(ttl time.Duration) *MatrixCache {
	return &MatrixCache{ttl: ttl, now: time.Now}
}

// GetOrRefresh returns the current matrix, refreshing first when unset or
// older than the freshness window. May return nil if no refresh has ever
// succeeded; callers handle that as "no data", not as fatal.
func (c *MatrixCache) GetOrRefresh(ctx context.Context, refresh RefreshFunc) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.frame != nil && now.Sub(c.fetchedAt) <= c.ttl {
		return c.frame
	}

	f, err := refresh(ctx)
	if err != nil || f == nil || f.Len() == 0 {
		return c.frame
	}
	c.frame = f
	c.fetchedAt = now
	return c.frame
}
