package farm

import "testing"

func TestDefaultSoil(t *testing.T) {
	soil := DefaultSoil()
	if soil.PH != 6.5 {
		t.Errorf("PH = %v, want 6.5", soil.PH)
	}
	if soil.Moisture != 20 || soil.Nitrogen != 45 || soil.Phosphorus != 25 || soil.Potassium != 180 {
		t.Errorf("unexpected default soil: %+v", soil)
	}
}

func TestMandiPrices(t *testing.T) {
	prices := MandiPrices()
	if len(prices) != 4 {
		t.Fatalf("len(MandiPrices()) = %d, want 4", len(prices))
	}
	if prices[0].Commodity != "Rice" || prices[0].Market != "Karnal" {
		t.Errorf("first quote = %+v, want Rice at Karnal", prices[0])
	}
	for _, p := range prices {
		if p.Price == "" {
			t.Errorf("empty price for %s", p.Commodity)
		}
	}
}
