package repository

import (
	"context"
	"log/slog"

	"github.com/HectorMRC/geocart"
	"github.com/HectorMRC/geocart/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool the repository relies on.
// pgxmock satisfies the same set, which keeps the repository testable
// without a live database.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchPendingPoints(ctx context.Context, limit int) ([]models.Point, error)
	UpdatePointCartesian(ctx context.Context, pointID int, cart geocart.Cartesian) error
	IncrementFailureCount(ctx context.Context, pointID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
