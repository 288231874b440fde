package match

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/smilematch/quotes/internal/entity"
)

// Milan city centre.
const (
	originLat = 45.4642
	originLng = 9.1900
)

func eligibleProvider(name string, lat, lng float64) *entity.Provider {
	now := time.Now()
	return &entity.Provider{
		ID:                   uuid.New(),
		BusinessName:         name,
		Latitude:             lat,
		Longitude:            lng,
		PriceListCompletedAt: &now,
		ProfileCompletedAt:   &now,
		StaffCompletedAt:     &now,
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// Milan -> Monza is roughly 14.5 km great-circle.
	d := Distance(originLat, originLng, 45.5845, 9.2744)
	assert.InDelta(t, 14.5, d, 1.0)
}

func TestDistanceZero(t *testing.T) {
	assert.Zero(t, Distance(originLat, originLng, originLat, originLng))
}

func TestNearestExcludesBeyondRadius(t *testing.T) {
	near := eligibleProvider("near", 45.47, 9.20)    // ~1 km
	far := eligibleProvider("far", 45.5845, 9.2744)  // ~14.5 km
	city2 := eligibleProvider("city2", 45.07, 7.69)  // Turin, ~125 km

	got := Nearest(originLat, originLng, []*entity.Provider{far, city2, near}, DefaultRadiusKm, DefaultLimit)

	assert.Len(t, got, 1)
	assert.Equal(t, "near", got[0].Provider.BusinessName)
}

func TestNearestBoundaryIsExclusive(t *testing.T) {
	p := eligibleProvider("edge", 45.47, 9.20)
	d := Distance(originLat, originLng, p.Latitude, p.Longitude)

	// Radius exactly equal to the distance must exclude the provider.
	assert.Empty(t, Nearest(originLat, originLng, []*entity.Provider{p}, d, DefaultLimit))
	// A hair more includes it.
	assert.Len(t, Nearest(originLat, originLng, []*entity.Provider{p}, d+0.001, DefaultLimit), 1)
}

func TestNearestSkipsIneligible(t *testing.T) {
	ok := eligibleProvider("ok", 45.47, 9.20)
	noStaff := eligibleProvider("no-staff", 45.47, 9.20)
	noStaff.StaffCompletedAt = nil
	noProfile := eligibleProvider("no-profile", 45.47, 9.20)
	noProfile.ProfileCompletedAt = nil
	noPrices := eligibleProvider("no-prices", 45.47, 9.20)
	noPrices.PriceListCompletedAt = nil

	got := Nearest(originLat, originLng, []*entity.Provider{noStaff, ok, noProfile, noPrices}, DefaultRadiusKm, DefaultLimit)

	assert.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Provider.BusinessName)
}

func TestNearestSortsAndCaps(t *testing.T) {
	a := eligibleProvider("a", 45.47, 9.20)  // nearest
	b := eligibleProvider("b", 45.49, 9.21)  // second
	c := eligibleProvider("c", 45.51, 9.23)  // third
	d := eligibleProvider("d", 45.53, 9.25)  // fourth, cut by the cap

	got := Nearest(originLat, originLng, []*entity.Provider{d, b, c, a}, DefaultRadiusKm, DefaultLimit)

	assert.Len(t, got, DefaultLimit)
	assert.Equal(t, "a", got[0].Provider.BusinessName)
	assert.Equal(t, "b", got[1].Provider.BusinessName)
	assert.Equal(t, "c", got[2].Provider.BusinessName)
	assert.True(t, got[0].DistanceKm <= got[1].DistanceKm)
	assert.True(t, got[1].DistanceKm <= got[2].DistanceKm)
}

func TestNearestNoCandidates(t *testing.T) {
	assert.Empty(t, Nearest(originLat, originLng, nil, DefaultRadiusKm, DefaultLimit))
}
