// Package geo provides great-circle distance and coordinate formatting.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// LatLng is a position in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the position lies within the usual ranges.
func (p LatLng) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Lat)
	}
	if math.IsNaN(p.Lng) || p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Lng)
	}
	return nil
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the haversine distance between a and b in kilometres.
func Distance(a, b LatLng) float64 {
	dLat := ToRadians(b.Lat - a.Lat)
	dLng := ToRadians(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(ToRadians(a.Lat))*math.Cos(ToRadians(b.Lat))
	// Rounding can push h just past 1 for near-antipodal points.
	h = math.Min(math.Max(h, 0), 1)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// DMS is a coordinate in whole degrees, minutes and seconds.
// The sign of the input is not kept.
type DMS struct {
	Degrees int `json:"degrees"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// String formats d as 33°52'7".
func (d DMS) String() string {
	return fmt.Sprintf("%d°%d'%d\"", d.Degrees, d.Minutes, d.Seconds)
}

// ToDMS converts a latitude or longitude to degrees, minutes and seconds,
// flooring each component of the absolute value.
func ToDMS(coord float64) DMS {
	abs := math.Abs(coord)
	degrees := math.Floor(abs)
	minutesFull := (abs - degrees) * 60
	minutes := math.Floor(minutesFull)
	seconds := math.Floor((minutesFull - minutes) * 60)
	return DMS{Degrees: int(degrees), Minutes: int(minutes), Seconds: int(seconds)}
}
