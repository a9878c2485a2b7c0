package mockdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantsStableIDs(t *testing.T) {
	first := Restaurants(25.0117, 121.4651)
	second := Restaurants(25.0117, 121.4651)

	require.Len(t, first, len(seeds))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
		assert.True(t, strings.HasPrefix(first[i].Id, "mock-"))
	}
}

func TestRestaurantsCenteredOnRequest(t *testing.T) {
	out := Restaurants(24.0, 120.0)

	for _, r := range out {
		assert.InDelta(t, 24.0, r.Lat, 0.01)
		assert.InDelta(t, 120.0, r.Lng, 0.01)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.ImageUrl)
		assert.NotZero(t, r.Rating)
	}
}

func TestRestaurantsCopyIsolated(t *testing.T) {
	out := Restaurants(25.0, 121.0)
	out[0].Name = "changed"

	again := Restaurants(25.0, 121.0)
	assert.NotEqual(t, "changed", again[0].Name)
}
