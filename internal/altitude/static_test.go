package altitude_test

import (
	"log/slog"
	"testing"

	"github.com/HectorMRC/geocart/internal/altitude"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_Elevation(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("returns the configured elevation for any position", func(t *testing.T) {
		provider := altitude.NewStaticProvider(132.5, logger)

		for _, pos := range [][2]float64{{0, 0}, {48.8566, 2.3522}, {-90, 180}} {
			elevation, err := provider.Elevation(ctx, pos[0], pos[1])

			require.NoError(t, err)
			assert.InEpsilon(t, 132.5, elevation, 1e-12)
		}
	})

	t.Run("zero elevation keeps points on the surface", func(t *testing.T) {
		provider := altitude.NewStaticProvider(0, logger)

		elevation, err := provider.Elevation(ctx, 27.9881, 86.925)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, elevation, 1e-12)
	})
}
