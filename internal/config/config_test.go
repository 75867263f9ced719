package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "geolocation_history.db", cfg.DBSource)
	assert.Equal(t, "nominatim", cfg.GeocoderProvider)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15, cfg.MapZoom)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DB_SOURCE=/tmp/history.db\nMAP_ZOOM=12\nHTTP_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	t.Setenv("MAP_ZOOM", "9")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/history.db", cfg.DBSource)
	assert.Equal(t, 9, cfg.MapZoom)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}
