// Package geo resolves the caller's approximate location from their IP
// address using the ip-api.com free endpoint.
//
// Location lookup is advisory: a failed or ambiguous lookup degrades to a
// fixed New Delhi location instead of surfacing an error, so downstream
// weather and recommendation flows always have coordinates to work with.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/agrimitra/agrimitra/internal/log"
)

// Location is a resolved geographic position.
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
}

// DefaultLocation returns the location used when IP lookup fails.
func DefaultLocation() Location {
	return Location{
		Lat:     28.6139,
		Lon:     77.2090,
		City:    "New Delhi",
		Region:  "Delhi",
		Country: "India",
	}
}

// Client queries the ip-api.com geolocation service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     log.Logger
}

// New creates a geolocation client. baseURL should include the trailing
// path up to which the IP is appended, e.g. "http://ip-api.com/json/".
func New(baseURL string, logger log.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// apiResponse mirrors the ip-api.com JSON payload fields we consume.
type apiResponse struct {
	Status  string  `json:"status"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"regionName"`
	Country string  `json:"country"`
}

// Locate resolves the location for ip. An empty ip asks the service to
// geolocate the requesting host. Locate never fails: any transport or
// decode problem yields DefaultLocation.
func (c *Client) Locate(ctx context.Context, ip string) Location {
	loc, err := c.lookup(ctx, ip)
	if err != nil {
		c.logger.Warn("geolocation lookup failed, using default location",
			"ip", ip, "error", err)
		return DefaultLocation()
	}
	return loc
}

func (c *Client) lookup(ctx context.Context, ip string) (Location, error) {
	endpoint := c.baseURL + url.PathEscape(ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Location{}, fmt.Errorf("building geolocation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("calling geolocation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation service returned %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("decoding geolocation response: %w", err)
	}

	// ip-api reports errors in-band with status "fail".
	if body.Status != "" && body.Status != "success" {
		return Location{}, fmt.Errorf("geolocation lookup status %q", body.Status)
	}
	if body.Lat == 0 && body.Lon == 0 {
		return Location{}, fmt.Errorf("geolocation response missing coordinates")
	}

	return Location{
		Lat:     body.Lat,
		Lon:     body.Lon,
		City:    body.City,
		Region:  body.Region,
		Country: body.Country,
	}, nil
}
