package repository

import (
	"context"
	"strings"
	"time"

	"geolocator/internal/models"
)

// Store is the location history, backed by SQLite or PostgreSQL.
type Store interface {
	Append(ctx context.Context, loc *models.Location) error
	ListAll(ctx context.Context) ([]models.Location, error)
	ListRecent(ctx context.Context, limit int) ([]models.Location, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Open picks the backend from source: a postgres:// URL connects to PostgreSQL,
// anything else is a SQLite file path (or ":memory:").
func Open(ctx context.Context, source string) (Store, error) {
	if strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://") {
		return OpenPostgres(ctx, source)
	}
	return OpenSQLite(source)
}

// recordDefaults returns the creation time and kind to store for loc, leaving loc untouched.
func recordDefaults(loc *models.Location) (time.Time, string) {
	createdAt := loc.CreatedAt.UTC()
	if loc.CreatedAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	kind := loc.Kind
	if kind == "" {
		kind = models.KindGeocode
	}
	return createdAt, kind
}
