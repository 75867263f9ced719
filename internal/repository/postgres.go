package repository

import (
	"context"
	"fmt"

	"geolocator/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository keeps the location history in PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an existing pool. The schema must already exist, see EnsureSchema.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenPostgres connects to connString and creates the locations table if needed
func OpenPostgres(ctx context.Context, connString string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("repository: cannot connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository: cannot reach db: %w", err)
	}

	r := NewPostgresRepository(pool)
	if err := r.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// EnsureSchema creates the locations table and its index when they are missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		query TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90),
		longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180),
		display_name TEXT NOT NULL DEFAULT '',
		kind VARCHAR(16) NOT NULL DEFAULT 'geocode',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS locations_created_at_idx ON locations (created_at);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Close() error {
	r.db.Close()
	return nil
}

// Append inserts loc and fills in its ID and CreatedAt
func (r *PostgresRepository) Append(ctx context.Context, loc *models.Location) error {
	createdAt, kind := recordDefaults(loc)

	sql := `
		INSERT INTO locations (query, latitude, longitude, display_name, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, sql,
		loc.Query, loc.Latitude, loc.Longitude, loc.DisplayName, kind, createdAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("repository: %w: %v", models.ErrSaveFailed, err)
	}
	loc.ID, loc.CreatedAt, loc.Kind = id, createdAt, kind
	return nil
}

// ListAll returns every record, oldest first
func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Location, error) {
	return r.list(ctx, `
		SELECT id, query, latitude, longitude, display_name, kind, created_at
		FROM locations
		ORDER BY id ASC
	`)
}

// ListRecent returns at most limit records, newest first
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]models.Location, error) {
	return r.list(ctx, `
		SELECT id, query, latitude, longitude, display_name, kind, created_at
		FROM locations
		ORDER BY id DESC
		LIMIT $1
	`, limit)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM locations").Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: failed to count locations: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) list(ctx context.Context, sql string, args ...any) ([]models.Location, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		err := rows.Scan(
			&loc.ID,
			&loc.Query,
			&loc.Latitude,
			&loc.Longitude,
			&loc.DisplayName,
			&loc.Kind,
			&loc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}
