package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "zero distance",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 40.7128, lon2: -74.0060,
			want: 0, tolerance: 0.001,
		},
		{
			name: "nyc to la",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 34.0522, lon2: -118.2437,
			want: 3_935_746, tolerance: 5_000,
		},
		{
			name: "one degree of latitude at equator",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			want: 111_195, tolerance: 100,
		},
		{
			name: "short hop ~1.3m",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 40.71281, lon2: -74.00601,
			want: 1.4, tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	d1 := Haversine(40.7128, -74.0060, 51.5074, -0.1278)
	d2 := Haversine(51.5074, -0.1278, 40.7128, -74.0060)
	assert.InDelta(t, d1, d2, 0.0001)
}

func TestPairKey(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"already ordered", "aaa", "bbb", "aaa:bbb"},
		{"reversed", "bbb", "aaa", "aaa:bbb"},
		{"equal ids", "xyz", "xyz", "xyz:xyz"},
		{"uuid-ish", "f0e1", "0a2b", "0a2b:f0e1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PairKey(tt.a, tt.b))
		})
	}
}

func TestPairKey_Commutative(t *testing.T) {
	ids := []string{"c1", "c2", "circle-9", "00af", "zz"}
	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, PairKey(a, b), PairKey(b, a), "PairKey(%q,%q)", a, b)
		}
	}
}

func TestValidCoordinate(t *testing.T) {
	require.NoError(t, ValidCoordinate(40.7128, -74.0060))
	require.NoError(t, ValidCoordinate(-90, 180))

	assert.Error(t, ValidCoordinate(91, 0))
	assert.Error(t, ValidCoordinate(0, -181))
	nan := func() float64 { var z float64; return z / z }()
	assert.Error(t, ValidCoordinate(nan, 0))
}

func TestBoundingBox_ContainsRadius(t *testing.T) {
	lat, lon := 40.7128, -74.0060
	radius := 5000.0

	minLat, maxLat, minLon, maxLon := BoundingBox(lat, lon, radius)

	// Points exactly radius meters away along each axis must fall inside.
	north := Point{Lat: lat + radius/111_000.0, Lon: lon}
	assert.LessOrEqual(t, north.Lat, maxLat)
	assert.GreaterOrEqual(t, lat-radius/111_000.0, minLat)
	assert.Less(t, minLon, lon)
	assert.Greater(t, maxLon, lon)
}
