package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"geolocator/internal/models"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteRepository keeps the location history in a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and runs pending migrations.
// Pass ":memory:" for an in-memory database.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("repository: creating data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repository: opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: pinging database: %w", err)
	}

	// One connection: avoids "database is locked" and keeps :memory: a single database.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA journal_mode=WAL"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("repository: %s: %w", pragma, err)
		}
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: running migrations: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// migrate applies the embedded migrations that are not yet recorded in schema_version.
func (r *SQLiteRepository) migrate() error {
	if _, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		var version int
		if _, err := fmt.Sscanf(entry.Name(), "%d_", &version); err != nil {
			return fmt.Errorf("parsing migration version from %q: %w", entry.Name(), err)
		}

		var exists int
		if err := r.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := r.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

// AppliedMigrations returns the applied migration versions in ascending order.
func (r *SQLiteRepository) AppliedMigrations() ([]int, error) {
	rows, err := r.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Append inserts loc and fills in its ID and CreatedAt.
func (r *SQLiteRepository) Append(ctx context.Context, loc *models.Location) error {
	createdAt, kind := recordDefaults(loc)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO locations (query, latitude, longitude, display_name, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		loc.Query, loc.Latitude, loc.Longitude, loc.DisplayName, kind,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("repository: %w: %v", models.ErrSaveFailed, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("repository: %w: %v", models.ErrSaveFailed, err)
	}
	loc.ID, loc.CreatedAt, loc.Kind = id, createdAt, kind
	return nil
}

// ListAll returns every record, oldest first.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Location, error) {
	return r.list(ctx, `
		SELECT id, query, latitude, longitude, display_name, kind, created_at
		FROM locations ORDER BY id ASC`)
}

// ListRecent returns at most limit records, newest first.
func (r *SQLiteRepository) ListRecent(ctx context.Context, limit int) ([]models.Location, error) {
	return r.list(ctx, `
		SELECT id, query, latitude, longitude, display_name, kind, created_at
		FROM locations ORDER BY id DESC LIMIT ?`, limit)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations").Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: counting locations: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Location, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		var createdAt string
		if err := rows.Scan(&loc.ID, &loc.Query, &loc.Latitude, &loc.Longitude, &loc.DisplayName, &loc.Kind, &createdAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("repository: parsing created_at: %w", err)
		}
		loc.CreatedAt = t
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return locations, nil
}
