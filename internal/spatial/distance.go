package spatial

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// Bounds is a latitude/longitude rectangle in degrees
type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// WithinRadius reports whether (lat2, lon2) lies within radiusMeters of (lat1, lon1)
func WithinRadius(lat1, lon1, lat2, lon2, radiusMeters float64) bool {
	return HaversineDistance(lat1, lon1, lat2, lon2) <= radiusMeters
}

// CircleBounds returns the bounding rectangle of a circle on the sphere.
// Wrapped is true when the rectangle crosses the antimeridian, in which case
// MinLng > MaxLng.
func CircleBounds(lat, lon, radiusMeters float64) (b Bounds, wrapped bool) {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	c := s2.CapFromCenterAngle(center, s1.Angle(radiusMeters/EarthRadiusMeters))
	rect := c.RectBound()

	lo, hi := rect.Lo(), rect.Hi()
	b = Bounds{
		MinLat: lo.Lat.Degrees(),
		MaxLat: hi.Lat.Degrees(),
		MinLng: lo.Lng.Degrees(),
		MaxLng: hi.Lng.Degrees(),
	}
	return b, rect.Lng.IsInverted()
}
