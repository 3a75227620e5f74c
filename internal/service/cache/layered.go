package cache

import "time"

// Layered is an L1 (memory) over L2 (Redis) BytesCache. Reads check L1
// first and backfill it on an L2 hit; writes go to both. L2 errors are
// swallowed so a Redis outage degrades to memory-only caching.
type Layered struct {
	l1 BytesCache
	l2 BytesCache
}

func NewLayered(l1, l2 BytesCache) *Layered {
	return &Layered{l1: l1, l2: l2}
}

func (c *Layered) GetBytes(key string) ([]byte, bool, error) {
	if b, ok, err := c.l1.GetBytes(key); err == nil && ok {
		return b, true, nil
	}
	b, ok, err := c.l2.GetBytes(key)
	if err != nil || !ok {
		return nil, false, nil
	}
	_ = c.l1.SetBytes(key, b, 30*time.Second)
	return b, true, nil
}

func (c *Layered) SetBytes(key string, value []byte, ttl time.Duration) error {
	if err := c.l1.SetBytes(key, value, ttl); err != nil {
		return err
	}
	_ = c.l2.SetBytes(key, value, ttl)
	return nil
}
