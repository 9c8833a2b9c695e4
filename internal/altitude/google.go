package altitude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for the Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps elevation services.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Elevation(ctx context.Context, r *maps.ElevationRequest) ([]maps.ElevationResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider initializes a new GoogleProvider with the given API client and logger.
// It returns a pointer to the newly created GoogleProvider.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Elevation takes a context and a position in degrees, and returns the elevation
// in meters at that position using the Google Maps Elevation API.
// It logs the elevation request and handles any errors that may occur during the
// process. If the response is empty, it returns an appropriate error.
func (gp *GoogleProvider) Elevation(ctx context.Context, lat, lon float64) (float64, error) {
	gp.log.DebugContext(ctx, "Resolving altitude using Google Maps", "lat", lat, "lon", lon)

	req := maps.ElevationRequest{Locations: []maps.LatLng{{Lat: lat, Lng: lon}}}
	elevationResponse, err := gp.client.Elevation(ctx, &req)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve elevation: %w", err)
	}

	if len(elevationResponse) == 0 {
		return 0, ErrEmptyResponse
	}

	return elevationResponse[0].Elevation, nil
}
