package repository

import (
	"context"
	"fmt"

	"github.com/HectorMRC/geocart"
	"github.com/HectorMRC/geocart/internal/models"
)

// FetchPendingPoints retrieves a list of points that still lack cartesian
// coordinates. It returns points that have a NULL x component and fewer than
// 5 conversion attempts. The results are ordered by creation date and limited
// to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of points to retrieve.
//
// Returns:
// - A slice of models.Point containing the points that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPendingPoints(ctx context.Context, limit int) ([]models.Point, error) {
	var points []models.Point
	query := `
		SELECT point_id, latitude, longitude, altitude
		FROM public.points
		WHERE
			x IS NULL
			AND convert_attempts < 5
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending points: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var point models.Point
		if errScan := rows.Scan(&point.ID, &point.Latitude, &point.Longitude, &point.Altitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending point: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new point without cartesian coordinates has been received.",
			"ID", point.ID, "Latitude", point.Latitude, "Longitude", point.Longitude)
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return points, nil
}

// UpdatePointCartesian stores the converted cartesian components of the point
// identified by pointID. It sets the convert_error field to NULL. It returns
// an error if the update fails.
func (r *Repository) UpdatePointCartesian(ctx context.Context, pointID int, cart geocart.Cartesian) error {
	query := `
		UPDATE points
		SET
			x = $1,
			y = $2,
			z = $3,
			convert_error = NULL
		WHERE
			point_id = $4;
	`

	_, err := r.db.Exec(ctx, query, cart.X, cart.Y, cart.Z, pointID)
	if err != nil {
		return fmt.Errorf("failed to update point coordinates: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the conversion attempt count for a specific
// point identified by pointID and updates the associated error message. It takes
// a context for managing request-scoped values, cancellation, and deadlines. If
// the update operation fails, it returns an error with additional context.
func (r *Repository) IncrementFailureCount(ctx context.Context, pointID int, errMsg string) error {
	query := `
		UPDATE points
		SET
			convert_attempts = convert_attempts + 1,
			convert_error = $1
		WHERE point_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, pointID)
	if err != nil {
		return fmt.Errorf("failed to update convert error and number of attempts: %w", err)
	}

	return nil
}
