package altitude

import (
	"context"
	"log/slog"
)

// StaticProvider resolves every position to the same fixed elevation. It serves
// deployments whose stored points carry no altitude and where a constant offset
// from the surface (usually sea level, 0) is accurate enough.
type StaticProvider struct {
	elevation float64      // elevation is the value returned for every position, in meters
	log       *slog.Logger // log is the logger for logging operations
}

// NewStaticProvider creates a new static altitude provider that returns the
// given elevation for every position.
func NewStaticProvider(elevation float64, log *slog.Logger) *StaticProvider {
	return &StaticProvider{elevation: elevation, log: log}
}

// Elevation returns the configured elevation regardless of the position.
func (sp *StaticProvider) Elevation(ctx context.Context, lat, lon float64) (float64, error) {
	sp.log.DebugContext(ctx, "Resolving altitude with static elevation", "lat", lat, "lon", lon)

	return sp.elevation, nil
}
