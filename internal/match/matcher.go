package match

import (
	"math"
	"sort"

	"github.com/smilematch/quotes/internal/entity"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// DefaultRadiusKm bounds the provider search around a patient location.
	DefaultRadiusKm = 10.0

	// DefaultLimit caps how many providers receive a quote.
	DefaultLimit = 3
)

// Match pairs an eligible provider with its distance from the patient.
type Match struct {
	Provider   *entity.Provider
	DistanceKm float64
}

// Distance returns the haversine great-circle distance in kilometers.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180.0
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Nearest filters candidates to eligible providers strictly inside radiusKm of
// the patient location, sorts them nearest first, and caps the result at limit.
// Candidates at exactly the radius are excluded.
func Nearest(lat, lng float64, candidates []*entity.Provider, radiusKm float64, limit int) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, p := range candidates {
		if !p.Eligible() {
			continue
		}
		d := Distance(lat, lng, p.Latitude, p.Longitude)
		if d < radiusKm {
			matches = append(matches, Match{Provider: p, DistanceKm: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].DistanceKm < matches[j].DistanceKm })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
