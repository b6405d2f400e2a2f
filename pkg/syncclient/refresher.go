package syncclient

import (
	"context"
	"time"
)

// SessionRefresher renews the access token in the background at half its
// expiration interval. It only fires while a session is known to exist and
// retires itself after the first failed renewal.
type SessionRefresher struct {
	interval   time.Duration
	refresh    func(context.Context) error
	hasSession func() bool
}

// NewSessionRefresher builds a refresher for the given access-token expiry.
func NewSessionRefresher(accessExpiry time.Duration, refresh func(context.Context) error, hasSession func() bool) *SessionRefresher {
	return &SessionRefresher{
		interval:   accessExpiry / 2,
		refresh:    refresh,
		hasSession: hasSession,
	}
}

// Run blocks until the context ends or a renewal fails. The first renewal
// fires no earlier than one interval after Run starts.
func (r *SessionRefresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !r.hasSession() {
				continue
			}
			if err := r.refresh(ctx); err != nil {
				// Retired: no further attempts are scheduled.
				return err
			}
		}
	}
}
