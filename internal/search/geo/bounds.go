// internal/search/geo/bounds.go
package geo

import "math"

// Latitude/longitude domain limits (WGS 84 degrees).
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Bounds is a geographic bounding rectangle. A rectangle whose longitude
// range crosses the ±180° seam is encoded as MinLng > MaxLng; the Wraps
// flag is precomputed at construction so that normalization and predicate
// evaluation can never disagree about it.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
	Wraps  bool    `json:"wraps"`
}

// Wraps reports whether a longitude range crosses the antimeridian.
func Wraps(minLng, maxLng float64) bool {
	return minLng > maxLng
}

// NewBounds builds a Bounds from four raw coordinates. Latitudes are
// clamped to [-90, 90] and swapped if inverted. Longitudes are clamped to
// [-180, 180] but never swapped: an inverted longitude pair encodes
// antimeridian wraparound. Returns false if any component is NaN or ±Inf.
func NewBounds(minLat, maxLat, minLng, maxLng float64) (Bounds, bool) {
	for _, v := range [4]float64{minLat, maxLat, minLng, maxLng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bounds{}, false
		}
	}

	minLat = clamp(minLat, MinLatitude, MaxLatitude)
	maxLat = clamp(maxLat, MinLatitude, MaxLatitude)
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}

	minLng = clamp(minLng, MinLongitude, MaxLongitude)
	maxLng = clamp(maxLng, MinLongitude, MaxLongitude)

	return Bounds{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLng: minLng,
		MaxLng: maxLng,
		Wraps:  Wraps(minLng, maxLng),
	}, true
}

// ContainsLat reports inclusive latitude range membership. No pole
// wraparound is modeled.
func (b Bounds) ContainsLat(lat float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat
}

// ContainsLng reports longitude membership. For a wrapping rectangle the
// range is [MinLng, 180] ∪ [-180, MaxLng].
func (b Bounds) ContainsLng(lng float64) bool {
	if b.Wraps {
		return lng >= b.MinLng || lng <= b.MaxLng
	}
	return lng >= b.MinLng && lng <= b.MaxLng
}

// Contains reports whether the point lies inside the rectangle.
func (b Bounds) Contains(lat, lng float64) bool {
	return b.ContainsLat(lat) && b.ContainsLng(lng)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
