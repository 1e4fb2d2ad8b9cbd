// Package geo provides great-circle distance and bounding-box helpers for radius searches.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusMiles is the mean Earth radius used by DistanceMiles.
	EarthRadiusMiles = 3958.8
	// MetersPerMile converts a radius in miles to meters.
	MetersPerMile = 1609.34
)

// boundPadding widens orb's bound slightly. orb uses the equatorial radius,
// which would yield a box marginally smaller than our mean-radius circle.
const boundPadding = 1.001

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Valid reports whether the point lies inside the latitude/longitude ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p Point) orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// DistanceMiles returns the Haversine distance between a and b in miles.
func DistanceMiles(a, b Point) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

// MilesToMeters converts miles to meters.
func MilesToMeters(miles float64) float64 {
	return miles * MetersPerMile
}

// Bound is a latitude/longitude box. When MinLng > MaxLng the box crosses the antimeridian.
type Bound struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoundAround returns a box containing every point within radiusMiles of center.
func BoundAround(center Point, radiusMiles float64) Bound {
	meters := MilesToMeters(radiusMiles) * (orb.EarthRadius / (EarthRadiusMiles * MetersPerMile)) * boundPadding
	b := orbgeo.NewBoundAroundPoint(center.orb(), meters)

	return Bound{
		MinLat: math.Max(b.Min.Lat(), -90),
		MaxLat: math.Min(b.Max.Lat(), 90),
		MinLng: b.Min.Lon(),
		MaxLng: b.Max.Lon(),
	}
}

// CrossesAntimeridian reports whether the box wraps around longitude ±180.
func (b Bound) CrossesAntimeridian() bool {
	return b.MinLng > b.MaxLng
}

// Contains reports whether p lies inside the box.
func (b Bound) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.CrossesAntimeridian() {
		return p.Lng >= b.MinLng || p.Lng <= b.MaxLng
	}

	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
