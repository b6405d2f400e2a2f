package syncclient

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func dropMap(id string) func([]mapView) []mapView {
	return func(maps []mapView) []mapView {
		out := make([]mapView, 0, len(maps))
		for _, m := range maps {
			if m.ID != id {
				out = append(out, m)
			}
		}
		return out
	}
}

func TestMutate_OptimisticRemovalVisibleDuringCall(t *testing.T) {
	c := NewCache()
	c.Set("maps", []mapView{{ID: "a", Name: "Anvil"}, {ID: "b", Name: "Barrow"}})

	err := Mutate(context.Background(), c, "maps", dropMap("a"), func(ctx context.Context) error {
		// The call observes the speculative state, not the snapshot.
		v, ok := c.Get("maps")
		require.True(t, ok)
		maps := v.([]mapView)
		require.Len(t, maps, 1)
		assert.Equal(t, "b", maps[0].ID)
		return nil
	})
	require.NoError(t, err)

	v, _ := c.Get("maps")
	assert.Len(t, v.([]mapView), 1)
}

func TestMutate_RestoresSnapshotOnError(t *testing.T) {
	c := NewCache()
	before := []mapView{{ID: "a", Name: "Anvil"}, {ID: "b", Name: "Barrow"}, {ID: "c", Name: "Citadel"}}
	c.Set("maps", before)

	snapshot, err := json.Marshal(before)
	require.NoError(t, err)

	callErr := errors.New("500 from server")
	err = Mutate(context.Background(), c, "maps", dropMap("b"), func(ctx context.Context) error {
		return callErr
	})
	require.ErrorIs(t, err, callErr)

	v, ok := c.Get("maps")
	require.True(t, ok)
	restored, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, string(snapshot), string(restored), "rollback restores the snapshot verbatim")
}

func TestMutate_InvalidatesOnSettle(t *testing.T) {
	c := NewCache()
	c.Set("maps", []mapView{{ID: "a"}})

	require.NoError(t, Mutate(context.Background(), c, "maps", dropMap("a"), func(ctx context.Context) error {
		return nil
	}))

	refetched := false
	_, err := c.Fetch(context.Background(), "maps", func(ctx context.Context) (any, error) {
		refetched = true
		return []mapView{}, nil
	})
	require.NoError(t, err)
	assert.True(t, refetched, "a settled mutation marks the key stale")
}

func TestMutate_CancelsRacingFetch(t *testing.T) {
	c := NewCache()
	c.Set("maps", []mapView{{ID: "a"}, {ID: "b"}})
	c.Invalidate("maps")

	started := make(chan struct{})
	release := make(chan struct{})
	fetchDone := make(chan error, 1)
	go func() {
		_, err := c.Fetch(context.Background(), "maps", func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return []mapView{{ID: "a"}, {ID: "b"}}, nil
		})
		fetchDone <- err
	}()
	<-started

	err := Mutate(context.Background(), c, "maps", dropMap("a"), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
	close(release)
	require.ErrorIs(t, <-fetchDone, context.Canceled)

	// The stale pre-fetch result never overwrote the optimistic state.
	v, _ := c.Get("maps")
	maps := v.([]mapView)
	require.Len(t, maps, 1)
	assert.Equal(t, "b", maps[0].ID)
}

func TestMutate_NoCachedValueStillCalls(t *testing.T) {
	c := NewCache()

	called := false
	require.NoError(t, Mutate(context.Background(), c, "maps", dropMap("a"), func(ctx context.Context) error {
		called = true
		return nil
	}))
	assert.True(t, called)

	_, ok := c.Get("maps")
	assert.False(t, ok)
}
