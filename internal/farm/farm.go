// Package farm holds farm-side reference data: soil profiles and mandi
// price listings. Real sensor and market integrations are not wired yet,
// so the package serves representative data for northern India.
package farm

// SoilProfile describes the measured properties of a field's soil.
// Nutrient values are in kg/ha, moisture in percent.
type SoilProfile struct {
	PH         float64 `json:"ph"`
	Moisture   float64 `json:"moisture"`
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
}

// MarketPrice is a single commodity quote from a mandi.
type MarketPrice struct {
	Commodity string `json:"commodity"`
	Price     string `json:"price"`
	Market    string `json:"market"`
}

// DefaultSoil returns the soil profile used when no sensor data is
// available for the caller's field.
func DefaultSoil() SoilProfile {
	return SoilProfile{
		PH:         6.5,
		Moisture:   20,
		Nitrogen:   45,
		Phosphorus: 25,
		Potassium:  180,
	}
}

// MandiPrices returns the current commodity quotes.
func MandiPrices() []MarketPrice {
	return []MarketPrice{
		{Commodity: "Rice", Price: "₹2,500/quintal", Market: "Karnal"},
		{Commodity: "Wheat", Price: "₹2,100/quintal", Market: "Patiala"},
		{Commodity: "Maize", Price: "₹1,800/quintal", Market: "Ambala"},
		{Commodity: "Cotton", Price: "₹6,200/quintal", Market: "Hisar"},
	}
}
