package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	dist := HaversineDistance(55.7558, 37.6173, 55.7558, 37.6173)
	assert.Equal(t, 0.0, dist)
}

func TestHaversineDistance_KnownDistances(t *testing.T) {
	// 0.001 градуса долготы на экваторе - примерно 111.19 метра
	dist := HaversineDistance(0, 0, 0, 0.001)
	assert.InDelta(t, 111.19, dist, 0.1)

	// 0.0005 градуса широты - примерно 55.6 метра на любой долготе
	dist = HaversineDistance(55.7558, 37.6173, 55.7563, 37.6173)
	assert.InDelta(t, 55.6, dist, 0.1)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	forward := HaversineDistance(55.7558, 37.6173, 59.9343, 30.3351)
	backward := HaversineDistance(59.9343, 30.3351, 55.7558, 37.6173)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestValidCoordinate(t *testing.T) {
	testCases := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"обычная точка", 55.7558, 37.6173, true},
		{"граница широты", 90, 0, true},
		{"граница долготы", 0, -180, true},
		{"широта за пределами", 90.1, 0, false},
		{"долгота за пределами", 0, 180.1, false},
		{"NaN широта", math.NaN(), 0, false},
		{"NaN долгота", 0, math.NaN(), false},
		{"бесконечность", math.Inf(1), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidCoordinate(tc.lat, tc.lon))
		})
	}
}
