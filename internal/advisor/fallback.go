package advisor

import (
	"fmt"
	"strings"

	"github.com/agrimitra/agrimitra/internal/farm"
	"github.com/agrimitra/agrimitra/internal/weather"
)

// chatFallback returns the canned chat reply for a surface. Every surface
// has an arm; anything unexpected lands on the general reply.
func chatFallback(surface Surface) string {
	switch surface {
	case SurfaceCrop:
		return "Based on your query about crop recommendations, I suggest considering factors like soil pH, current weather conditions, and local market demand. For rice, ensure pH 5.5-6.5 and good water availability. For wheat, pH 6.0-7.5 works best. For maize, pH 5.8-7.0 is ideal. Consider current temperature and humidity levels for best results."
	case SurfaceMarket:
		return "Market analysis shows stable prices for most crops. Rice: ₹2,400-2,600/quintal, Wheat: ₹2,000-2,200/quintal, Maize: ₹1,700-1,900/quintal. Prices vary by region and season. Monitor local mandi rates and consider storage if prices are low. Sell during peak demand periods for better returns."
	case SurfaceDisease:
		return "Common plant diseases include leaf spot, powdery mildew, and root rot. For leaf spot: Apply fungicide, ensure proper drainage. For powdery mildew: Use sulfur-based treatments, improve air circulation. For root rot: Reduce watering, apply appropriate fungicide. Always consult local agricultural experts for accurate diagnosis and treatment."
	case SurfaceGeneral:
		return generalChatFallback
	default:
		return generalChatFallback
	}
}

const generalChatFallback = "I understand your question about farming. For the most accurate advice, please provide specific details about your location, crop type, soil conditions, and any visible symptoms or concerns."

const diseaseFallback = "Detected disease: Leaf spot. Recommended treatment: Fungicide application. Please consult with a local agricultural expert for confirmation."

func marketFallback(crop string) string {
	return fmt.Sprintf("Based on current market conditions, %s prices are stable. Average price range: ₹2,000-2,500 per quintal. Consider selling during peak demand periods.", crop)
}

// BasicRecommendation derives a crop suggestion from soil pH and current
// weather using fixed agronomic thresholds. It backs RecommendCrop when
// generation is unavailable.
func BasicRecommendation(soil farm.SoilProfile, w weather.Snapshot) string {
	crop := "Maize"
	if soil.PH < 6.0 {
		crop = "Rice"
	} else if soil.PH > 7.5 {
		crop = "Wheat"
	}

	if w.Temperature > 35 {
		crop += " (Heat-tolerant variety)"
	}
	if w.Humidity > 80 {
		crop += " (Suitable for high humidity)"
	}

	return fmt.Sprintf("Recommended crop: %s\n\nBased on your soil pH of %v and current weather conditions (%v°C, %v%% humidity), %s would be the most suitable choice for your farm.",
		crop, soil.PH, w.Temperature, w.Humidity, strings.ToLower(crop))
}
