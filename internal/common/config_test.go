package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddr)
	assert.Equal(t, int64(50)<<20, cfg.Server.MaxUploadSize)
	assert.Equal(t, 2, cfg.Server.QueueWorkers)
	assert.Equal(t, "pdftoppm", cfg.Loader.Pdftoppm)
	assert.Equal(t, 200, cfg.Loader.DPI)
	assert.Equal(t, 2*time.Minute, cfg.Loader.ExecTimeout)
	assert.False(t, cfg.Pipeline.SkipVisionWhenText)
	assert.Equal(t, 1, cfg.Pipeline.PageConcurrency)
	assert.Equal(t, 60*time.Second, cfg.LLM.CallTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/mattin")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("PIPELINE_PAGE_CONCURRENCY", "4")
	t.Setenv("WATCH_ROOTS", "1=/srv/inbox")
	t.Setenv("WATCH_INITIAL_SCAN", "true")
	t.Setenv("LLM_TIMEOUT", "90s")

	cfg := LoadConfig()

	assert.Equal(t, "postgres://localhost/mattin", cfg.Database.DSN)
	assert.Equal(t, int64(5)<<20, cfg.Server.MaxUploadSize)
	assert.Equal(t, 4, cfg.Pipeline.PageConcurrency)
	assert.Equal(t, "1=/srv/inbox", cfg.Ingest.Roots)
	assert.True(t, cfg.Ingest.InitialScan)
	assert.Equal(t, 90*time.Second, cfg.LLM.CallTimeout)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("LLM_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, int64(50)<<20, cfg.Server.MaxUploadSize)
	assert.Equal(t, 60*time.Second, cfg.LLM.CallTimeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/mattin")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
