package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	// same point
	assert.Equal(t, 0, HaversineMeters(25.0117, 121.4651, 25.0117, 121.4651))

	// 板橋站 to 台北車站, roughly 7.3 km
	d := HaversineMeters(25.0139, 121.4633, 25.0478, 121.5170)
	assert.InDelta(t, 6600, d, 700)

	// symmetric
	assert.Equal(t,
		HaversineMeters(25.01, 121.46, 25.05, 121.52),
		HaversineMeters(25.05, 121.52, 25.01, 121.46))

	// one degree of latitude is about 111 km
	d = HaversineMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}
