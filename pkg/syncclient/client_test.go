package syncclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSignIn_PrimesAuthCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/sign-in", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "marta@example.com", body["email"])
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  "access",
			"refreshToken": "refresh",
			"user":         map[string]any{"id": "user-1", "email": "marta@example.com"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	user, err := client.SignIn(context.Background(), "marta@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.True(t, client.HasSession())
}

func TestClientSignIn_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.SignIn(context.Background(), "marta@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.False(t, client.HasSession())
}

func TestClientRefresh_FailureClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid refresh token"})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	client.Cache().Set(AuthKey, &User{ID: "user-1"})
	require.True(t, client.HasSession())

	require.Error(t, client.Refresh(context.Background()))
	assert.False(t, client.HasSession())
}

func TestClientCampaignMaps_ServedFromCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode([]Map{{ID: "map-1", Name: "Nightstone", CampaignID: "campaign-1"}})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	maps, err := client.CampaignMaps(context.Background(), "campaign-1")
	require.NoError(t, err)
	require.Len(t, maps, 1)

	_, err = client.CampaignMaps(context.Background(), "campaign-1")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestClientDeleteMap_RollsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to delete map"})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	before := []Map{
		{ID: "map-1", Name: "Nightstone", CampaignID: "campaign-1"},
		{ID: "map-2", Name: "Goldenfields", CampaignID: "campaign-1"},
	}
	client.Cache().Set(MapsKey("campaign-1"), before)

	err = client.DeleteMap(context.Background(), before[0])
	require.Error(t, err)

	v, ok := client.Cache().Get(MapsKey("campaign-1"))
	require.True(t, ok)
	assert.Equal(t, before, v.([]Map), "the cached list is back to its pre-delete state")
}

func TestClientDeleteMap_DropsEntryOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/maps/map-1", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "campaign-1", body["campaignId"])
		json.NewEncoder(w).Encode(Map{ID: "map-1"})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	client.Cache().Set(MapsKey("campaign-1"), []Map{
		{ID: "map-1", CampaignID: "campaign-1"},
		{ID: "map-2", CampaignID: "campaign-1"},
	})

	require.NoError(t, client.DeleteMap(context.Background(), Map{ID: "map-1", CampaignID: "campaign-1"}))

	v, _ := client.Cache().Get(MapsKey("campaign-1"))
	maps := v.([]Map)
	require.Len(t, maps, 1)
	assert.Equal(t, "map-2", maps[0].ID)
}
