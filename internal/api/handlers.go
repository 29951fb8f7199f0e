package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// maxImageBytes caps disease-detection uploads.
const maxImageBytes = 10 << 20

type handler struct {
	logger     *slog.Logger
	advisor    AdvisorService
	geo        LocationProvider
	weather    WeatherProvider
	trustProxy bool
}

// location resolves the caller's location from their IP.
func (h *handler) location(w http.ResponseWriter, r *http.Request) {
	loc := h.geo.Locate(r.Context(), clientIP(r, h.trustProxy))
	writeJSON(w, http.StatusOK, loc)
}

// currentWeather returns conditions at ?lat=&lon=, or at the caller's
// resolved location when coordinates are absent or malformed.
func (h *handler) currentWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		loc := h.geo.Locate(r.Context(), clientIP(r, h.trustProxy))
		lat, lon = loc.Lat, loc.Lon
	}

	snap := h.weather.Current(r.Context(), lat, lon)
	writeJSON(w, http.StatusOK, snap)
}

func (h *handler) soil(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, farm.DefaultSoil())
}

func (h *handler) marketPrices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, farm.MandiPrices())
}

// cropRecommendationRequest carries optional overrides; whatever is
// missing is backfilled from providers and defaults.
type cropRecommendationRequest struct {
	SoilData    *farm.SoilProfile `json:"soilData"`
	WeatherData *weather.Snapshot `json:"weatherData"`
	Location    *geo.Location     `json:"location"`
}

func (h *handler) cropRecommendation(w http.ResponseWriter, r *http.Request) {
	var req cropRecommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()

	soil := farm.DefaultSoil()
	if req.SoilData != nil {
		soil = *req.SoilData
	}

	var loc geo.Location
	if req.Location != nil {
		loc = *req.Location
	} else {
		loc = h.geo.Locate(ctx, clientIP(r, h.trustProxy))
	}

	var snap weather.Snapshot
	if req.WeatherData != nil {
		snap = *req.WeatherData
	} else {
		snap = h.weather.Current(ctx, loc.Lat, loc.Lon)
	}

	text, source := h.advisor.RecommendCrop(ctx, soil, snap, loc)
	writeJSON(w, http.StatusOK, map[string]string{
		"recommendation": text,
		"aiSource":       source,
	})
}

type marketAnalysisRequest struct {
	Crop     string `json:"crop"`
	Location string `json:"location"`
}

func (h *handler) marketAnalysis(w http.ResponseWriter, r *http.Request) {
	var req marketAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Crop) == "" {
		writeError(w, http.StatusBadRequest, "Crop is required")
		return
	}
	if req.Location == "" {
		req.Location = "India"
	}

	text, source := h.advisor.AnalyzeMarket(r.Context(), req.Crop, req.Location)
	writeJSON(w, http.StatusOK, map[string]string{
		"analysis": text,
		"aiSource": source,
	})
}

// diseaseDetection accepts a multipart form with an "image" file and an
// optional "plantType" field.
func (h *handler) diseaseDetection(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No image provided")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image provided")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("reading uploaded image", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to detect disease")
		return
	}
	if len(image) == 0 {
		writeError(w, http.StatusBadRequest, "No image provided")
		return
	}

	text, source := h.advisor.DescribeDisease(r.Context(), image, r.FormValue("plantType"))
	writeJSON(w, http.StatusOK, map[string]string{
		"detection": text,
		"aiSource":  source,
	})
}

type chatRequest struct {
	Message  string `json:"message"`
	Context  string `json:"context"`
	Language string `json:"language"`
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	surface := advisor.ParseSurface(req.Context)
	text, source := h.advisor.Chat(r.Context(), req.Message, surface, req.Language)

	writeJSON(w, http.StatusOK, map[string]string{
		"response":  text,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"aiSource":  source,
	})
}

// decodeJSON decodes a JSON body. An empty body decodes to the zero
// value so optional-body endpoints work without special casing.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
