package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b LatLng
		want float64
	}{
		{"same point", LatLng{51.5, -0.12}, LatLng{51.5, -0.12}, 0},
		{"one degree of longitude at equator", LatLng{0, 0}, LatLng{0, 1}, 111.19},
		{"one degree of latitude", LatLng{0, 0}, LatLng{1, 0}, 111.19},
		{"antipodes", LatLng{0, 0}, LatLng{0, 180}, math.Pi * EarthRadiusKm},
		{"london to paris", LatLng{51.5074, -0.1278}, LatLng{48.8566, 2.3522}, 343.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 0.5)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := LatLng{-33.8688, 151.2093}
	b := LatLng{40.7128, -74.0060}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_NearAntipodesIsFinite(t *testing.T) {
	pairs := [][2]LatLng{
		{{45, -30}, {-45, 150}},
		{{33.3, 12.7}, {-33.3, -167.3}},
		{{-89.999999, 0}, {89.999999, 180}},
		{{10.000000001, 20}, {-10, -160}},
	}

	for _, pair := range pairs {
		d := Distance(pair[0], pair[1])
		assert.False(t, math.IsNaN(d), "%v", pair)
		assert.InDelta(t, math.Pi*EarthRadiusKm, d, 0.5, "%v", pair)
	}
}

func TestToDMS(t *testing.T) {
	tests := []struct {
		coord float64
		want  DMS
	}{
		{-33.8688, DMS{33, 52, 7}},
		{151.2093, DMS{151, 12, 33}},
		{0, DMS{0, 0, 0}},
		{10.5, DMS{10, 30, 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDMS(tt.coord), "ToDMS(%v)", tt.coord)
	}
}

func TestDMS_String(t *testing.T) {
	assert.Equal(t, `33°52'7"`, DMS{33, 52, 7}.String())
}

func TestToRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-12)
	assert.InDelta(t, -math.Pi/2, ToRadians(-90), 1e-12)
}

func TestLatLng_Validate(t *testing.T) {
	assert.NoError(t, LatLng{45, 90}.Validate())
	assert.Error(t, LatLng{91, 0}.Validate())
	assert.Error(t, LatLng{0, -181}.Validate())
	assert.Error(t, LatLng{math.NaN(), 0}.Validate())
}
