package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// LocationProvider resolves a caller's location from their IP.
type LocationProvider interface {
	Locate(ctx context.Context, ip string) geo.Location
}

// WeatherProvider returns current conditions at coordinates.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) weather.Snapshot
}

// AdvisorService produces advice, falling back internally when no model
// is available. The second return value names the reply source.
type AdvisorService interface {
	Chat(ctx context.Context, message string, surface advisor.Surface, lang string) (string, string)
	RecommendCrop(ctx context.Context, soil farm.SoilProfile, w weather.Snapshot, loc geo.Location) (string, string)
	DescribeDisease(ctx context.Context, image []byte, plantType string) (string, string)
	AnalyzeMarket(ctx context.Context, crop, location string) (string, string)
}

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger      *slog.Logger
	Advisor     AdvisorService   // Required
	Geo         LocationProvider // Required
	Weather     WeatherProvider  // Required
	CORSOrigins []string         // Allowed origins for CORS
	TrustProxy  bool             // Trust X-Real-IP/X-Forwarded-For headers
	RateBurst   int              // Rate limiter burst size per IP (0 = default 60)
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Advisor == nil {
		return nil, errors.New("advisor is required")
	}
	if cfg.Geo == nil {
		return nil, errors.New("location provider is required")
	}
	if cfg.Weather == nil {
		return nil, errors.New("weather provider is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &handler{
		logger:     logger,
		advisor:    cfg.Advisor,
		geo:        cfg.Geo,
		weather:    cfg.Weather,
		trustProxy: cfg.TrustProxy,
	}

	mux := http.NewServeMux()

	// Farm context
	mux.HandleFunc("GET /api/location", h.location)
	mux.HandleFunc("GET /api/weather", h.currentWeather)
	mux.HandleFunc("GET /api/soil", h.soil)
	mux.HandleFunc("GET /api/market-prices", h.marketPrices)

	// Advice
	mux.HandleFunc("POST /api/crop-recommendation", h.cropRecommendation)
	mux.HandleFunc("POST /api/market-analysis", h.marketAnalysis)
	mux.HandleFunc("POST /api/disease-detection", h.diseaseDetection)
	mux.HandleFunc("POST /api/chat", h.chat)

	// Rate limiter: per-IP token bucket (1 token/sec refill)
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 60
	}
	rl := newRateLimiter(1.0, burst)

	// Build middleware stack (outermost first):
	//   Recovery → Logging → CORS → RateLimit → Routes
	// CORS must be before RateLimit so preflight OPTIONS gets proper CORS headers.
	var stack http.Handler = mux
	stack = rateLimitMiddleware(rl, cfg.TrustProxy, logger)(stack)
	stack = corsMiddleware(cfg.CORSOrigins)(stack)
	stack = loggingMiddleware(logger)(stack)
	stack = recoveryMiddleware(logger)(stack)

	// Top-level mux keeps the health probe outside the middleware stack.
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /api/health", health)
	topMux.Handle("/", stack)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// health reports liveness. It carries no dependency checks: the service
// is up as long as it can serve this.
func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
