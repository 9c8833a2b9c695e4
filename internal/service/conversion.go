package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/HectorMRC/geocart"
	"github.com/HectorMRC/geocart/internal/altitude"
	"github.com/HectorMRC/geocart/internal/metrics"
	"github.com/HectorMRC/geocart/internal/models"
	"github.com/HectorMRC/geocart/internal/repository"
)

// ConversionService provides methods for coordinate conversion operations,
// including logging, repository access, altitude provider integration,
// metrics tracking, and worker management.
type ConversionService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	provider     altitude.Provider    // Altitude provider for points stored without elevation
	providerName string               // Name of the provider for metrics labeling
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	sphere       geocart.Sphere       // Reference sphere the points are projected onto
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling pending points
}

// NewConversionService creates a new instance of ConversionService.
// It takes a logger, a repository interface, an altitude provider,
// provider name for metrics, metrics for monitoring, the reference sphere,
// the number of workers to use, and a polling interval for conversion runs.
// It returns a pointer to the newly created ConversionService.
func NewConversionService(
	log *slog.Logger,
	repo repository.Interface,
	provider altitude.Provider,
	providerName string,
	metrics *metrics.Metrics,
	sphere geocart.Sphere,
	numWorkers int,
	pollInterval time.Duration,
) *ConversionService {
	return &ConversionService{
		log:          log,
		repo:         repo,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		sphere:       sphere,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run starts the conversion service, which periodically polls for new points to convert.
// It listens for a cancellation signal from the context to gracefully stop the service.
func (cs *ConversionService) Run(ctx context.Context) {
	ticker := time.NewTicker(cs.pollInterval)
	defer ticker.Stop()

	cs.log.InfoContext(ctx, "Conversion service started...")

	for {
		select {
		case <-ctx.Done():
			cs.log.InfoContext(ctx, "Conversion service stopped.")
			return
		case <-ticker.C:
			cs.log.InfoContext(ctx, "Polling for new points to convert...")
			cs.processBatch(ctx)
		}
	}
}

// processBatch fetches pending points from the repository, starts a worker pool to process them,
// and waits for all workers to finish. It logs errors if point fetching fails and logs the status
// of batch processing.
func (cs *ConversionService) processBatch(ctx context.Context) {
	pointLimit := 100
	points, err := cs.repo.FetchPendingPoints(ctx, pointLimit)
	if err != nil {
		cs.log.ErrorContext(ctx, "Failed to fetch points", "error", err)
		return
	}
	if len(points) == 0 {
		cs.log.InfoContext(ctx, "No points to process.")
		return
	}

	cs.log.InfoContext(
		ctx,
		"Found points to process. Starting worker pool.",
		"jobs",
		len(points),
		"num_workers",
		cs.numWorkers,
	)

	jobs := make(chan models.Point, len(points))
	var wgr sync.WaitGroup

	for i := 1; i <= cs.numWorkers; i++ {
		wgr.Add(1)
		go cs.worker(ctx, i, &wgr, jobs)
	}

	for _, point := range points {
		jobs <- point
	}
	close(jobs)

	wgr.Wait()
	cs.log.InfoContext(ctx, "Processing batch finished")
}

// worker processes points from the jobs channel. It increments the active worker count,
// logs the processing of each point, and converts its position into cartesian coordinates.
// In case of an error, it updates the failure count and logs the error.
// On successful conversion, it stores the cartesian components of the point.
// The function takes a context, an index for the worker, a wait group to signal completion,
// and a channel of points to process.
func (cs *ConversionService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Point) {
	defer wg.Done()
	for point := range jobs {
		var err error

		cs.metrics.ActiveWorkers.Inc()
		cs.log.DebugContext(ctx, "Processing point", "worker", idx, "point", point.ID)

		cart, err := cs.convert(ctx, point)
		if err != nil {
			cs.log.ErrorContext(ctx, "Failed to convert", "worker", idx, "point", point.ID, "error", err)
			cs.metrics.PointsProcessed.WithLabelValues("failure").Inc()

			if err = cs.repo.IncrementFailureCount(ctx, point.ID, err.Error()); err != nil {
				cs.log.ErrorContext(
					ctx,
					"Could not update failure count for point",
					"worker", idx,
					"point", point.ID,
					"error", err,
				)
			}
			cs.metrics.ActiveWorkers.Dec()
			continue
		}

		cs.metrics.PointsProcessed.WithLabelValues("success").Inc()

		if err = cs.repo.UpdatePointCartesian(ctx, point.ID, cart); err != nil {
			cs.log.ErrorContext(
				ctx,
				"Failed to update coordinates for point",
				"worker", idx,
				"point", point.ID,
				"error", err,
			)
		} else {
			cs.log.DebugContext(ctx, "Worker successfully processed the point", "worker", idx, "point", point.ID)
		}

		cs.metrics.ActiveWorkers.Dec()
	}
}

// convert resolves the altitude of the point through the provider when it is
// stored without one, validates the position, and projects it onto the
// cartesian space of the reference sphere. Provider requests are timed and
// recorded in the service metrics.
func (cs *ConversionService) convert(ctx context.Context, point models.Point) (geocart.Cartesian, error) {
	var alt float64
	if point.Altitude != nil {
		alt = *point.Altitude
	} else {
		startTime := time.Now()
		elevation, err := cs.provider.Elevation(ctx, point.Latitude, point.Longitude)
		duration := time.Since(startTime).Seconds()
		cs.metrics.RequestSeconds.WithLabelValues(cs.providerName).Observe(duration)

		if err != nil {
			cs.metrics.ProviderErrors.Inc()
			return geocart.Cartesian{}, fmt.Errorf("failed to resolve altitude: %w", err)
		}
		alt = elevation
	}

	position, err := geocart.NewGeographic(point.Latitude, point.Longitude, alt)
	if err != nil {
		return geocart.Cartesian{}, fmt.Errorf("failed to validate point position: %w", err)
	}

	return cs.sphere.ToCartesian(position), nil
}
