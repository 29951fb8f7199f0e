// Package weather fetches current conditions from weatherapi.com.
//
// Like geolocation, weather is advisory input to recommendations, so a
// missing API key or a failed call degrades to a representative snapshot
// instead of returning an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/agrimitra/agrimitra/internal/log"
)

// Snapshot holds the current conditions at a location.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Condition   string  `json:"condition"`
	WindKPH     float64 `json:"wind_kph"`
}

// FallbackSnapshot returns the conditions used when the weather service
// is unreachable or unconfigured.
func FallbackSnapshot() Snapshot {
	return Snapshot{
		Temperature: 32,
		Humidity:    65,
		Condition:   "Partly cloudy",
		WindKPH:     12,
	}
}

// Client queries the weatherapi.com current-conditions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     log.Logger
}

// New creates a weather client. An empty apiKey is allowed; every lookup
// then serves FallbackSnapshot.
func New(baseURL, apiKey string, logger log.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// apiResponse mirrors the weatherapi.com fields we consume.
type apiResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		WindKPH float64 `json:"wind_kph"`
	} `json:"current"`
}

// Current returns conditions at the given coordinates. It never fails:
// any problem yields FallbackSnapshot.
func (c *Client) Current(ctx context.Context, lat, lon float64) Snapshot {
	if c.apiKey == "" {
		c.logger.Debug("weather API key not set, using fallback conditions")
		return FallbackSnapshot()
	}

	snap, err := c.fetch(ctx, lat, lon)
	if err != nil {
		c.logger.Warn("weather lookup failed, using fallback conditions",
			"lat", lat, "lon", lon, "error", err)
		return FallbackSnapshot()
	}
	return snap
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (Snapshot, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", fmt.Sprintf("%f,%f", lat, lon))
	endpoint := c.baseURL + "/current.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("calling weather service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("weather service returned %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Snapshot{}, fmt.Errorf("decoding weather response: %w", err)
	}

	return Snapshot{
		Temperature: body.Current.TempC,
		Humidity:    body.Current.Humidity,
		Condition:   body.Current.Condition.Text,
		WindKPH:     body.Current.WindKPH,
	}, nil
}
