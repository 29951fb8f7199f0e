// Package client is a typed HTTP client for the agrimitra API. It is
// what the terminal chat uses to talk to a running server and satisfies
// orchestrator.Gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/log"
	"github.com/agrimitra/agrimitra/internal/orchestrator"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// Client calls the agrimitra JSON API.
type Client struct {
	base       string
	httpClient *http.Client
	logger     log.Logger
}

// New creates a client for the API rooted at base, e.g.
// "http://localhost:3001/api".
func New(base string, logger log.Logger) *Client {
	return &Client{
		base:       strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// apiError is the server's {"error": ...} shape.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(b), "application/json", out)
}

// Chat sends a chat message.
func (c *Client) Chat(ctx context.Context, message, chatContext, language string) (orchestrator.ChatReply, error) {
	req := map[string]string{
		"message":  message,
		"context":  chatContext,
		"language": language,
	}
	var resp struct {
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
		AISource  string `json:"aiSource"`
	}
	if err := c.postJSON(ctx, "/chat", req, &resp); err != nil {
		return orchestrator.ChatReply{}, err
	}

	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	if err != nil {
		ts = time.Now()
	}
	return orchestrator.ChatReply{
		Response:  resp.Response,
		Timestamp: ts,
		AISource:  resp.AISource,
	}, nil
}

// Location fetches the caller's resolved location.
func (c *Client) Location(ctx context.Context) (geo.Location, error) {
	var loc geo.Location
	if err := c.getJSON(ctx, "/location", &loc); err != nil {
		return geo.Location{}, err
	}
	return loc, nil
}

// Weather fetches current conditions at the caller's location.
func (c *Client) Weather(ctx context.Context) (weather.Snapshot, error) {
	var snap weather.Snapshot
	if err := c.getJSON(ctx, "/weather", &snap); err != nil {
		return weather.Snapshot{}, err
	}
	return snap, nil
}

// Soil fetches the soil profile.
func (c *Client) Soil(ctx context.Context) (farm.SoilProfile, error) {
	var soil farm.SoilProfile
	if err := c.getJSON(ctx, "/soil", &soil); err != nil {
		return farm.SoilProfile{}, err
	}
	return soil, nil
}

// MarketPrices fetches current mandi quotes.
func (c *Client) MarketPrices(ctx context.Context) ([]farm.MarketPrice, error) {
	var prices []farm.MarketPrice
	if err := c.getJSON(ctx, "/market-prices", &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// Recommend asks for a crop recommendation from explicit farm context.
func (c *Client) Recommend(ctx context.Context, soil farm.SoilProfile, w weather.Snapshot, loc geo.Location) (string, error) {
	req := map[string]any{
		"soilData":    soil,
		"weatherData": w,
		"location":    loc,
	}
	var resp struct {
		Recommendation string `json:"recommendation"`
	}
	if err := c.postJSON(ctx, "/crop-recommendation", req, &resp); err != nil {
		return "", err
	}
	return resp.Recommendation, nil
}

// AnalyzeMarket asks for a market report for a crop.
func (c *Client) AnalyzeMarket(ctx context.Context, crop, location string) (string, error) {
	req := map[string]string{"crop": crop, "location": location}
	var resp struct {
		Analysis string `json:"analysis"`
	}
	if err := c.postJSON(ctx, "/market-analysis", req, &resp); err != nil {
		return "", err
	}
	return resp.Analysis, nil
}

// DetectDisease uploads a plant image for analysis.
func (c *Client) DetectDisease(ctx context.Context, filename string, image []byte, plantType string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := fw.Write(image); err != nil {
		return "", fmt.Errorf("writing image to form: %w", err)
	}
	if plantType != "" {
		if err := mw.WriteField("plantType", plantType); err != nil {
			return "", fmt.Errorf("writing plantType field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalizing upload form: %w", err)
	}

	var resp struct {
		Detection string `json:"detection"`
	}
	if err := c.do(ctx, http.MethodPost, "/disease-detection", &buf, mw.FormDataContentType(), &resp); err != nil {
		return "", err
	}
	return resp.Detection, nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/health", &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return fmt.Errorf("unexpected health status %q", resp.Status)
	}
	return nil
}

var _ orchestrator.Gateway = (*Client)(nil)
