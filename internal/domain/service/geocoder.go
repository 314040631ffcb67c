package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder resolves free-form addresses to coordinates.
type Geocoder interface {
	// Resolve returns nil with no error when the address cannot be located.
	Resolve(ctx context.Context, address string) (*orb.Point, error)
}
