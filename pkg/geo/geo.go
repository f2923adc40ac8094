// Package geo provides the spherical-earth distance math and pair-key
// canonicalization used across the collision pipeline.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean earth radius used by the spherical
// approximation. Matches the value baked into the spatial SQL query.
const EarthRadiusMeters = 6371000.0

// Point represents a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Haversine returns the great-circle distance between two coordinates in
// meters. The result is always non-negative.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)
	rLat1 := lat1 * (math.Pi / 180.0)
	rLat2 := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(rLat1)*math.Cos(rLat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Distance is Haversine over Point values.
func Distance(p1, p2 Point) float64 {
	return Haversine(p1.Lat, p1.Lon, p2.Lat, p2.Lon)
}

// PairKey returns the canonical identifier for an unordered pair of ids:
// the lexicographically smaller id first, joined with ":". It is commutative,
// so PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// ValidCoordinate reports whether lat/lon are finite and within the WGS84
// degree ranges.
func ValidCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("coordinate is not finite: lat=%v lon=%v", lat, lon)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude out of range: %v", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude out of range: %v", lon)
	}
	return nil
}

// BoundingBox returns a degree-space box that contains the disk of the given
// radius around (lat, lon). Crude approx: 1 degree of latitude ~= 111km; the
// longitude span widens with latitude. Used only as a prefilter — callers
// refine with Haversine.
func BoundingBox(lat, lon, radiusMeters float64) (minLat, maxLat, minLon, maxLon float64) {
	degLat := radiusMeters / 111_000.0

	// Longitude degrees shrink toward the poles; clamp the cosine so the box
	// stays finite near ±90°.
	cosLat := math.Cos(lat * (math.Pi / 180.0))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	degLon := radiusMeters / (111_000.0 * cosLat)

	return lat - degLat, lat + degLat, lon - degLon, lon + degLon
}
