package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Union Square to Chelsea Market, roughly 1.3 km
	d := HaversineDistance(40.7359, -73.9911, 40.7420, -74.0048)
	assert.InDelta(t, 1330, d, 60)

	assert.Equal(t, 0.0, HaversineDistance(1, 1, 1, 1))
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(40.7359, -73.9911, 40.7420, -74.0048, 2000))
	assert.False(t, WithinRadius(40.7359, -73.9911, 40.6782, -73.9442, 2000))
}

func TestCircleBounds(t *testing.T) {
	b, wrapped := CircleBounds(40.7128, -74.0060, 1000)
	assert.False(t, wrapped)
	assert.Less(t, b.MinLat, 40.7128)
	assert.Greater(t, b.MaxLat, 40.7128)
	assert.Less(t, b.MinLng, -74.0060)
	assert.Greater(t, b.MaxLng, -74.0060)
	// 1 km is about 0.009 degrees of latitude
	assert.InDelta(t, 0.009, b.MaxLat-40.7128, 0.001)

	_, wrapped = CircleBounds(0, 179.999, 5000)
	assert.True(t, wrapped)
}
