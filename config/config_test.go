package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("UPLOAD_FOLDER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, 16, cfg.MaxUploadMB)
	assert.Equal(t, "uploads", cfg.UploadFolder)
	assert.Equal(t, "jira_import_ready.csv", cfg.OutputCSV)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_UPLOAD_MB", "4")
	t.Setenv("UPLOAD_FOLDER", "/tmp/work")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes())
	assert.Equal(t, filepath.Join("/tmp/work", "processed"), cfg.ProcessedFolder())
}

func TestLoadConfigInvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Port)
}
