// Package model holds the GORM table structs.
package model

import "github.com/paulmach/orb"

// SplitPoint flattens an optional point into nullable latitude and longitude columns.
func SplitPoint(p *orb.Point) (lat, lng *float64) {
	if p == nil {
		return nil, nil
	}
	la, ln := p.Lat(), p.Lon()

	return &la, &ln
}

// JoinPoint rebuilds an optional point; a half-filled pair is treated as unknown.
func JoinPoint(lat, lng *float64) *orb.Point {
	if lat == nil || lng == nil {
		return nil
	}

	return &orb.Point{*lng, *lat}
}
