// Package geo computes great-circle distances between optional coordinates.
package geo

import (
	"cmp"
	"math"
	"slices"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// Point builds an orb point from latitude and longitude.
func Point(lat, lng float64) *orb.Point {
	return &orb.Point{lng, lat}
}

// DistanceKm returns the haversine distance between a and b in kilometres,
// rounded to two decimals. It returns nil when either point is missing or
// outside valid bounds.
func DistanceKm(a, b *orb.Point) *float64 {
	if !IsValid(a) || !IsValid(b) {
		return nil
	}

	d := math.Round(haversine(a.Lat(), a.Lon(), b.Lat(), b.Lon())*100) / 100

	return &d
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsValid checks if a coordinate is present and within Earth bounds.
func IsValid(p *orb.Point) bool {
	if p == nil {
		return false
	}
	lat, lng := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// SortByDistance orders items by ascending known distance with unknown
// distances after every known one. Ties and unknowns keep input order.
func SortByDistance[T any](items []T, distance func(T) *float64) {
	slices.SortStableFunc(items, func(x, y T) int {
		dx, dy := distance(x), distance(y)
		switch {
		case dx == nil && dy == nil:
			return 0
		case dx == nil:
			return 1
		case dy == nil:
			return -1
		default:
			return cmp.Compare(*dx, *dy)
		}
	})
}
