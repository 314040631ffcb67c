// Package geocode resolves addresses to coordinates.
package geocode

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/paulmach/orb"
	"googlemaps.github.io/maps"
)

type googleGeocoder struct {
	client  *maps.Client
	region  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGoogleGeocoder builds a geocoder backed by the Google Geocoding API.
func NewGoogleGeocoder(apiKey, region string, timeout time.Duration, logger *slog.Logger) (service.Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maps client")
	}

	return &googleGeocoder{
		client:  client,
		region:  region,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Resolve returns the first result's location. Lookup failures are reported
// as unknown so callers can keep going without a coordinate.
func (g *googleGeocoder) Resolve(ctx context.Context, address string) (*orb.Point, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.region,
	})
	if err != nil {
		g.logger.WarnContext(ctx, "Geocoding failed",
			slog.String("address", address),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "geocode request failed")
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := results[0].Geometry.Location

	return &orb.Point{loc.Lng, loc.Lat}, nil
}

type noopGeocoder struct{}

// NewNoopGeocoder resolves nothing; every address is unknown.
func NewNoopGeocoder() service.Geocoder {
	return noopGeocoder{}
}

func (noopGeocoder) Resolve(context.Context, string) (*orb.Point, error) {
	return nil, nil
}
