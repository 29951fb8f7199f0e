// Package advisor turns farm context into advice.
//
// An Advisor holds an optional Generator. When one is present, advice
// comes from the model; when it is absent or a call fails, every
// operation degrades to a deterministic fallback so callers always get
// an answer. Each reply carries its source so clients can label
// model-generated text.
package advisor

import (
	"context"
	"fmt"

	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/geo"
	"github.com/agrimitra/agrimitra/internal/log"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// Reply sources reported alongside generated text.
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

// Generation parameters per task.
var (
	chatParams    = GenRequest{MaxTokens: 500, Temperature: 0.7}
	cropParams    = GenRequest{MaxTokens: 300, Temperature: 0.7}
	diseaseParams = GenRequest{MaxTokens: 400, Temperature: 0.5}
	marketParams  = GenRequest{MaxTokens: 350, Temperature: 0.6}
)

// Advisor answers farming questions, with or without a model behind it.
type Advisor struct {
	gen    Generator
	logger log.Logger
}

// New creates an Advisor. A nil gen is valid and puts the advisor in
// fallback-only mode.
func New(gen Generator, logger log.Logger) *Advisor {
	return &Advisor{gen: gen, logger: logger}
}

// Configured reports whether a model backs this advisor.
func (a *Advisor) Configured() bool {
	return a.gen != nil
}

// generate is the single place that deals with an absent or failing
// Generator. ok is false when the caller should use its fallback.
func (a *Advisor) generate(ctx context.Context, task string, req GenRequest) (string, bool) {
	if a.gen == nil {
		return "", false
	}
	text, err := a.gen.Generate(ctx, req)
	if err != nil {
		a.logger.Warn("generation failed, serving fallback", "task", task, "error", err)
		return "", false
	}
	return text, true
}

// Chat answers a free-form message for the given surface and language.
// The returned source is SourceGemini or SourceFallback.
func (a *Advisor) Chat(ctx context.Context, message string, surface Surface, lang string) (string, string) {
	req := chatParams
	req.System = fmt.Sprintf(`You are a helpful agricultural assistant. Provide accurate, practical advice to farmers. Be concise and clear. Consider the local context and provide actionable recommendations.

Context: %s
Language preference: %s

Respond in the requested language. If the user asks in Malayalam (ml), respond in Malayalam.`, surface, lang)
	req.Prompt = message

	if text, ok := a.generate(ctx, "chat", req); ok {
		return text, SourceGemini
	}
	return chatFallback(surface), SourceFallback
}

// RecommendCrop suggests what to plant given soil, weather and location.
func (a *Advisor) RecommendCrop(ctx context.Context, soil farm.SoilProfile, w weather.Snapshot, loc geo.Location) (string, string) {
	req := cropParams
	req.Prompt = fmt.Sprintf(`Based on the following agricultural data, recommend the best crop to grow:

Location: %s, %s
Soil pH: %v
Soil Moisture: %v%%
Temperature: %v°C
Humidity: %v%%
Weather Condition: %s

Please provide:
1. Best crop recommendation
2. Why this crop is suitable
3. Any specific growing tips
4. Expected yield information`,
		loc.City, loc.Region, soil.PH, soil.Moisture, w.Temperature, w.Humidity, w.Condition)

	if text, ok := a.generate(ctx, "crop-recommendation", req); ok {
		return text, SourceGemini
	}
	return BasicRecommendation(soil, w), SourceFallback
}

// DescribeDisease analyzes an uploaded plant image. Image bytes are
// accepted for interface stability; analysis currently keys off the
// plant type until a vision model is wired in.
func (a *Advisor) DescribeDisease(ctx context.Context, image []byte, plantType string) (string, string) {
	if plantType == "" {
		plantType = "crop"
	}
	req := diseaseParams
	req.Prompt = fmt.Sprintf(`Based on common plant diseases, analyze this scenario: A farmer has uploaded an image of their %s for disease detection. The image appears to show some symptoms.

Please provide:
1. Most likely disease identification
2. Symptoms to look for
3. Recommended treatment
4. Preventive measures
5. When to consult an expert`, plantType)

	if text, ok := a.generate(ctx, "disease-detection", req); ok {
		return text, SourceGemini
	}
	return diseaseFallback, SourceFallback
}

// AnalyzeMarket reports market conditions for a crop in a region.
func (a *Advisor) AnalyzeMarket(ctx context.Context, crop, location string) (string, string) {
	req := marketParams
	req.Prompt = fmt.Sprintf(`Provide current market analysis for %s in %s region:

Please include:
1. Current market price trends
2. Best time to sell
3. Storage recommendations
4. Market demand analysis
5. Price forecasting for next few weeks`, crop, location)

	if text, ok := a.generate(ctx, "market-analysis", req); ok {
		return text, SourceGemini
	}
	return marketFallback(crop), SourceFallback
}
