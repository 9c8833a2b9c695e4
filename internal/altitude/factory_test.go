package altitude_test

import (
	"log/slog"
	"testing"

	"github.com/HectorMRC/geocart/internal/altitude"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := slog.Default()

	t.Run("create static provider successfully", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:      altitude.ProviderTypeStatic,
			Elevation: 120,
			Logger:    logger,
		}

		provider, err := altitude.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
		// Verify it's a StaticProvider by type assertion
		_, ok := provider.(*altitude.StaticProvider)
		assert.True(t, ok, "expected provider to be *StaticProvider")
	})

	t.Run("create Google provider successfully", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:      altitude.ProviderTypeGoogle,
			APIKey:    "test-api-key",
			RateLimit: 10,
			Logger:    logger,
		}

		provider, err := altitude.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
		// Verify it's a GoogleProvider by type assertion
		_, ok := provider.(*altitude.GoogleProvider)
		assert.True(t, ok, "expected provider to be *GoogleProvider")
	})

	t.Run("create Google provider without API key fails", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:      altitude.ProviderTypeGoogle,
			APIKey:    "", // Empty API key
			RateLimit: 10,
			Logger:    logger,
		}

		provider, err := altitude.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "API key is required for Google provider")
	})

	t.Run("create Google provider without rate limit", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:      altitude.ProviderTypeGoogle,
			APIKey:    "test-api-key",
			RateLimit: 0, // No rate limit
			Logger:    logger,
		}

		provider, err := altitude.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
	})

	t.Run("create Open-Elevation provider successfully", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:      altitude.ProviderTypeOpenElevation,
			RateLimit: 3,
			Logger:    logger,
		}

		provider, err := altitude.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
		// Verify it's an OpenElevationProvider by type assertion
		_, ok := provider.(*altitude.OpenElevationProvider)
		assert.True(t, ok, "expected provider to be *OpenElevationProvider")
	})

	t.Run("create Open-Elevation provider without rate limit", func(t *testing.T) {
		// Open-Elevation doesn't require an API key, and a missing rate limit
		// falls back to a conservative default
		config := altitude.ProviderConfig{
			Type:   altitude.ProviderTypeOpenElevation,
			Logger: logger,
		}

		provider, err := altitude.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
	})

	t.Run("unsupported provider type", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:   altitude.ProviderType("unsupported"),
			Logger: logger,
		}

		provider, err := altitude.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type: unsupported")
	})

	t.Run("empty provider type", func(t *testing.T) {
		config := altitude.ProviderConfig{
			Type:   altitude.ProviderType(""),
			Logger: logger,
		}

		provider, err := altitude.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type")
	})
}

func TestProviderType_Constants(t *testing.T) {
	// Verify that provider type constants are correctly defined
	assert.Equal(t, "static", string(altitude.ProviderTypeStatic))
	assert.Equal(t, "google", string(altitude.ProviderTypeGoogle))
	assert.Equal(t, "open-elevation", string(altitude.ProviderTypeOpenElevation))
}
