package syncclient

import "context"

// Mutate runs a mutating API call with the optimistic-update discipline:
//
//	cancel in-flight fetch → snapshot → speculative mutate → request →
//	(restore on error | keep on success) → invalidate on settle
//
// The cache therefore shows the mutation's effect before the round trip
// resolves, rolls back to the snapshot verbatim on failure, and in either
// case forces a fresh authoritative read on the next access.
func Mutate[T any](ctx context.Context, c *Cache, key string, apply func(T) T, call func(context.Context) error) error {
	// Serialize against a racing refetch: a fetch resolving after the
	// optimistic write must not clobber it.
	c.CancelFetch(key)

	var snapshot T
	had := false
	if prev, ok := c.Get(key); ok {
		if typed, ok := prev.(T); ok {
			snapshot = typed
			had = true
			c.Set(key, apply(typed))
		}
	}

	err := call(ctx)
	if err != nil && had {
		c.Set(key, snapshot)
	}
	c.Invalidate(key)
	return err
}
