package enka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paimonbot/paimonbot/internal/metrics"
)

// DefaultBaseURL is the public showcase host.
const DefaultBaseURL = "https://enka.network"

// DefaultTimeout bounds showcase fetches.
const DefaultTimeout = 10 * time.Second

// Cache stores raw showcase payloads keyed by UID. Implementations should
// expire entries quickly; the upstream asks clients to cache briefly.
type Cache interface {
	GetShowcase(ctx context.Context, uid string) ([]byte, bool)
	SetShowcase(ctx context.Context, uid string, payload []byte)
}

// Options configure a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Cache      Cache
	Metrics    metrics.Recorder
}

// Client fetches showcase snapshots, consulting the cache first.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	cache   Cache
	metrics metrics.Recorder
}

// New creates a showcase Client.
func New(opts Options) *Client {
	c := &Client{
		http:    opts.HTTPClient,
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		cache:   opts.Cache,
		metrics: opts.Metrics,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.http = &http.Client{Timeout: timeout}
	}
	if c.metrics == nil {
		c.metrics = metrics.NewNoop()
	}
	return c
}

// Fetch returns the showcase snapshot for a game UID. Cache failures fall
// through to the network; a non-200 upstream response is an error carrying
// the status, matching how the UI reports missing profiles.
func (c *Client) Fetch(ctx context.Context, uid string) (*Showcase, error) {
	if c.cache != nil {
		if payload, ok := c.cache.GetShowcase(ctx, uid); ok {
			c.metrics.IncShowcaseCacheHit()
			return decode(uid, payload)
		}
		c.metrics.IncShowcaseCacheMiss()
	}

	url := fmt.Sprintf("%s/u/%s/__data.json", c.baseURL, uid)
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Paimonbot/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("showcase request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("showcase request: [%d %s] the API server errored or the player profile does not exist",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	sc, err := decode(uid, payload)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.SetShowcase(ctx, uid, payload)
	}
	return sc, nil
}

func decode(uid string, payload []byte) (*Showcase, error) {
	var raw rawShowcase
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode showcase: %w", err)
	}
	return &Showcase{
		UID:        uid,
		PlayerInfo: raw.PlayerInfo,
		HasDetails: len(raw.AvatarInfoList) > 0,
	}, nil
}
