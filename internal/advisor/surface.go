package advisor

import "strings"

// Surface identifies which assistant a conversation belongs to. It steers
// prompt context and the canned response used when generation is
// unavailable.
type Surface int

const (
	SurfaceGeneral Surface = iota
	SurfaceCrop
	SurfaceMarket
	SurfaceDisease
)

// ParseSurface maps a wire-format context string to a Surface. Unknown
// values map to SurfaceGeneral.
func ParseSurface(s string) Surface {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "crop-recommendation", "crop":
		return SurfaceCrop
	case "market-analysis", "market":
		return SurfaceMarket
	case "disease-detection", "disease":
		return SurfaceDisease
	default:
		return SurfaceGeneral
	}
}

// String returns the wire-format context string for the surface.
func (s Surface) String() string {
	switch s {
	case SurfaceCrop:
		return "crop-recommendation"
	case SurfaceMarket:
		return "market-analysis"
	case SurfaceDisease:
		return "disease-detection"
	default:
		return "general"
	}
}
