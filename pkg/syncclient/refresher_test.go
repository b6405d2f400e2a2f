package syncclient

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRefresher_IntervalIsHalfExpiry(t *testing.T) {
	r := NewSessionRefresher(10*time.Minute, nil, nil)
	assert.Equal(t, 5*time.Minute, r.interval)
}

func TestSessionRefresher_FirstFireNoEarlierThanInterval(t *testing.T) {
	var fired atomic.Int32
	r := NewSessionRefresher(40*time.Millisecond,
		func(ctx context.Context) error {
			fired.Add(1)
			return nil
		},
		func() bool { return true },
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	start := time.Now()
	go func() { done <- r.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, fired.Load(), "no renewal before the first interval")

	require.Eventually(t, func() bool { return fired.Load() >= 1 }, time.Second, time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestSessionRefresher_SkipsTicksWithoutSession(t *testing.T) {
	var fired atomic.Int32
	var hasSession atomic.Bool

	r := NewSessionRefresher(10*time.Millisecond,
		func(ctx context.Context) error {
			fired.Add(1)
			return nil
		},
		hasSession.Load,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, fired.Load(), "no renewals without a session")

	hasSession.Store(true)
	require.Eventually(t, func() bool { return fired.Load() >= 1 }, time.Second, time.Millisecond)

	cancel()
	<-done
}

func TestSessionRefresher_RetiresAfterFirstFailure(t *testing.T) {
	var fired atomic.Int32
	renewErr := errors.New("session expired")

	r := NewSessionRefresher(10*time.Millisecond,
		func(ctx context.Context) error {
			fired.Add(1)
			return renewErr
		},
		func() bool { return true },
	)

	err := r.Run(context.Background())
	require.ErrorIs(t, err, renewErr)

	// Run returned on the failure; nothing keeps firing afterwards.
	time.Sleep(30 * time.Millisecond)
	assert.EqualValues(t, 1, fired.Load())
}
