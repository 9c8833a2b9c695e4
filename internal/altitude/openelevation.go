package altitude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// OpenElevationBaseURL -- Open-Elevation API base URL.
const OpenElevationBaseURL = "https://api.open-elevation.com/api/v1/lookup"

// OpenElevationProvider implements altitude resolution using the Open-Elevation
// API. This is a free elevation service backed by public SRTM data; the hosted
// instance is community-operated, so requests are rate limited.
type OpenElevationProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the Open-Elevation API
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// openElevationResponse represents the JSON response from the Open-Elevation API.
type openElevationResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`  // Latitude of the resolved position
		Longitude float64 `json:"longitude"` // Longitude of the resolved position
		Elevation float64 `json:"elevation"` // Elevation in meters
	} `json:"results"`
}

// ErrOpenElevationEmptyResponse is returned when the Open-Elevation API
// responds without any result.
var ErrOpenElevationEmptyResponse = errors.New("open-elevation API returned empty response")

// NewOpenElevationProvider creates a new Open-Elevation altitude provider.
// Uses the public Open-Elevation API endpoint by default.
func NewOpenElevationProvider(rateLimit int, log *slog.Logger) *OpenElevationProvider {
	const timeout = 10

	return &OpenElevationProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: OpenElevationBaseURL,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewOpenElevationProviderWithClient allows injecting a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewOpenElevationProviderWithClient(
	client HTTPClient,
	limiter *rate.Limiter,
	log *slog.Logger,
) *OpenElevationProvider {
	return &OpenElevationProvider{
		client:  client,
		baseURL: OpenElevationBaseURL,
		log:     log,
		limiter: limiter,
	}
}

// Elevation resolves the elevation of a position using the Open-Elevation API.
func (op *OpenElevationProvider) Elevation(ctx context.Context, lat, lon float64) (float64, error) {
	// Rate limit
	if err := op.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit exceeded: %w", err)
	}

	op.log.DebugContext(ctx, "Resolving altitude using Open-Elevation", "lat", lat, "lon", lon)

	reqURL, err := url.Parse(op.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	locations := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
	query := reqURL.Query()
	query.Set("locations", locations)
	reqURL.RawQuery = query.Encode()

	op.log.DebugContext(ctx, "Open-Elevation request URL", "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	// Headers
	req.Header.Set("Accept", "application/json")

	resp, err := op.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute elevation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		op.log.ErrorContext(ctx, "Open-Elevation API error", "status", resp.StatusCode, "body", string(body))
		return 0, fmt.Errorf("open-elevation API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	op.log.DebugContext(ctx, "Open-Elevation raw response", "body", string(body))

	var result openElevationResponse
	if err = json.Unmarshal(body, &result); err != nil {
		op.log.ErrorContext(ctx, "Failed to parse Open-Elevation response", "error", err, "body", string(body))
		return 0, fmt.Errorf("failed to decode open-elevation response: %w", err)
	}

	if len(result.Results) == 0 {
		return 0, ErrOpenElevationEmptyResponse
	}

	elevation := result.Results[0].Elevation
	op.log.DebugContext(ctx, "Open-Elevation found result", "lat", lat, "lon", lon, "elevation", elevation)

	return elevation, nil
}
