package altitude

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of altitude provider.
type ProviderType string

const (
	// ProviderTypeStatic represents the fixed-elevation provider.
	ProviderTypeStatic ProviderType = "static"
	// ProviderTypeGoogle represents the Google Maps elevation provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeOpenElevation represents the Open-Elevation provider.
	ProviderTypeOpenElevation ProviderType = "open-elevation"
)

// ProviderConfig holds configuration for creating an altitude provider.
type ProviderConfig struct {
	Type      ProviderType // Type of provider to create
	APIKey    string       // API key (used by Google provider)
	RateLimit int          // Rate limit for requests per second (used by Google and Open-Elevation providers)
	Elevation float64      // Fixed elevation in meters (used by static provider)
	Logger    *slog.Logger // Logger for the provider
}

// NewProvider creates an altitude provider based on the provided configuration.
// It applies the Factory pattern to decouple provider instantiation from business logic.
//
// Supported provider types:
// - "static": fixed elevation for every position (no network access)
// - "google": Google Maps Elevation API (requires API key)
// - "open-elevation": Open-Elevation API (free, no API key required)
//
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeStatic:
		return newStaticProvider(config)
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeOpenElevation:
		return newOpenElevationProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newStaticProvider creates a fixed-elevation altitude provider.
func newStaticProvider(config ProviderConfig) (Provider, error) {
	// The static provider needs no network access and no API key
	return NewStaticProvider(config.Elevation, config.Logger), nil
}

// newGoogleProvider creates a Google Maps elevation provider.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	// Create Google Maps client with API key and rate limiting
	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}

	// Apply rate limiting if specified
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}

// newOpenElevationProvider creates an Open-Elevation altitude provider.
func newOpenElevationProvider(config ProviderConfig) (Provider, error) {
	if config.RateLimit == 0 {
		config.RateLimit = 5
		config.Logger.Warn("Rate limit for Open-Elevation API not set, set a default value", "value", config.RateLimit)
	}

	// Open-Elevation is free and doesn't require an API key
	return NewOpenElevationProvider(config.RateLimit, config.Logger), nil
}
