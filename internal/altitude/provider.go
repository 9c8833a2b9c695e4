package altitude

import "context"

// Provider is an interface that defines a method for resolving the elevation
// of a geographic position. The Elevation method takes a context together with
// a latitude and longitude in degrees, and returns the elevation above the
// surface in meters and an error if any occurs.
type Provider interface {
	Elevation(ctx context.Context, lat, lon float64) (float64, error)
}
