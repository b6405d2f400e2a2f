package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"
)

// AuthKey is the cache key holding the signed-in user.
const AuthKey = "auth"

// MapsKey is the cache key holding a campaign's map list.
func MapsKey(campaignID string) string {
	return "campaigns/" + campaignID + "/maps"
}

// Client-side views of the API entities. Only the fields the sync layer
// works with are declared; unknown fields pass through the cache untouched
// inside the decoded values.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	DisplayName   string   `json:"displayName"`
	Email         string   `json:"email"`
	CampaignOrder []string `json:"campaignOrder"`
}

type Map struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CampaignID      string  `json:"campaignId"`
	SelectedMediaID *string `json:"selectedMediaId,omitempty"`
}

type Setup struct {
	Step      int  `json:"step"`
	Completed bool `json:"completed"`
}

type session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// APIError is a non-2xx response decoded into the server's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client is the typed API client backing the tabletop UI. Mutations go
// through the optimistic cache; the refresh cookie rides in the jar.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache

	mu          sync.Mutex
	accessToken string
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
		cache:   NewCache(),
	}, nil
}

// Cache exposes the client's query cache.
func (c *Client) Cache() *Cache {
	return c.cache
}

// HasSession reports whether a signed-in user is cached.
func (c *Client) HasSession() bool {
	user, ok := c.cache.Get(AuthKey)
	return ok && user != nil
}

// SignIn authenticates and primes the auth cache.
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	var s session
	err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	c.setAccessToken(s.AccessToken)
	c.cache.Set(AuthKey, s.User)
	return s.User, nil
}

// Refresh renews the token pair. On success the auth cache is updated; on
// failure the cached auth state is cleared so the session reads as gone.
func (c *Client) Refresh(ctx context.Context) error {
	var s session
	if err := c.do(ctx, http.MethodGet, "/api/auth/refresh", nil, &s); err != nil {
		c.setAccessToken("")
		c.cache.Set(AuthKey, nil)
		return err
	}
	c.setAccessToken(s.AccessToken)
	c.cache.Set(AuthKey, s.User)
	return nil
}

// CheckRefreshToken asks the server whether the session is still live.
func (c *Client) CheckRefreshToken(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/check-refresh-token", nil, &user); err != nil {
		c.cache.Set(AuthKey, nil)
		return nil, err
	}
	c.cache.Set(AuthKey, &user)
	return &user, nil
}

// NewSessionRefresher builds the background renewal loop for this client.
func (c *Client) NewSessionRefresher(accessExpiry time.Duration) *SessionRefresher {
	return NewSessionRefresher(accessExpiry, c.Refresh, c.HasSession)
}

// CampaignMaps returns the campaign's maps, served from cache when fresh.
func (c *Client) CampaignMaps(ctx context.Context, campaignID string) ([]Map, error) {
	value, err := c.cache.Fetch(ctx, MapsKey(campaignID), func(ctx context.Context) (any, error) {
		var maps []Map
		if err := c.do(ctx, http.MethodGet, "/api/campaigns/"+campaignID+"/maps", nil, &maps); err != nil {
			return nil, err
		}
		return maps, nil
	})
	if err != nil {
		return nil, err
	}
	maps, _ := value.([]Map)
	return maps, nil
}

// DeleteMap removes a map optimistically: the cached campaign map list
// drops the entry before the request resolves and is restored verbatim if
// the server rejects the delete.
func (c *Client) DeleteMap(ctx context.Context, m Map) error {
	return Mutate(ctx, c.cache, MapsKey(m.CampaignID),
		func(maps []Map) []Map {
			remaining := make([]Map, 0, len(maps))
			for _, cached := range maps {
				if cached.ID != m.ID {
					remaining = append(remaining, cached)
				}
			}
			return remaining
		},
		func(ctx context.Context) error {
			return c.do(ctx, http.MethodDelete, "/api/maps/"+m.ID,
				map[string]string{"campaignId": m.CampaignID}, nil)
		},
	)
}

// UpdateSetup applies a partial setup update and refreshes the setup key.
func (c *Client) UpdateSetup(ctx context.Context, update map[string]any) (*Setup, error) {
	var setup Setup
	if err := c.do(ctx, http.MethodPut, "/api/setup", update, &setup); err != nil {
		return nil, err
	}
	c.cache.Set("setup", &setup)
	return &setup, nil
}

func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.Lock()
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	c.mu.Unlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
