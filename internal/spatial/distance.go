package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/cardinalnav/campus-backend-go/internal/models"
)

// Earth's mean radius.
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// HaversineDistance calculates the great-circle distance between two points
// in meters using the Haversine formula.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// GeoDistance is HaversineDistance over GeoPoint values.
func GeoDistance(a, b models.GeoPoint) float64 {
	return HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}
