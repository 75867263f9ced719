//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"geolocator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		// The server restarts once after init, so the line shows up twice.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func TestPostgresRepository_AppendAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation must be idempotent")

	records := []*models.Location{
		{Query: "Paris", Latitude: 48.8566, Longitude: 2.3522, DisplayName: "Paris, France"},
		{Query: "48.8584, 2.2945", Latitude: 48.8584, Longitude: 2.2945, DisplayName: "Tour Eiffel", Kind: models.KindReverse},
		{Query: "Paris", Latitude: 48.8566, Longitude: 2.3522, DisplayName: "Paris, France"},
	}
	for _, rec := range records {
		require.NoError(t, repo.Append(ctx, rec))
		assert.NotZero(t, rec.ID)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Paris", all[0].Query)
	assert.Equal(t, models.KindGeocode, all[0].Kind)
	assert.Equal(t, models.KindReverse, all[1].Kind)

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, records[2].ID, recent[0].ID)
	assert.Equal(t, records[1].ID, recent[1].ID)
}

func TestPostgresRepository_RejectsOutOfRange(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	err := repo.Append(ctx, &models.Location{Query: "nowhere", Latitude: 95, Longitude: 0})
	assert.ErrorIs(t, err, models.ErrSaveFailed)
}
