package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.OutputDir)
	assert.Equal(t, 20, cfg.MaxPosts)
	assert.Equal(t, 10, cfg.MaxArticles)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "scraper_run.log", cfg.Logging.File)
	assert.Equal(t, "all", cfg.Reddit.Subreddit)
	assert.True(t, cfg.RSS.Enabled)
	assert.Equal(t, time.Hour, cfg.Valkey.CacheTTL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("BRAND", "Acme")
	t.Setenv("MAX_POSTS", "50")
	t.Setenv("REDDIT_CLIENT_ID", "id")
	t.Setenv("VALKEY_INIT_ADDRESS", "localhost:6379")
	t.Setenv("RSS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.Brand)
	assert.Equal(t, 50, cfg.MaxPosts)
	assert.Equal(t, "id", cfg.Reddit.ClientID)
	assert.Equal(t, "localhost:6379", cfg.Valkey.InitAddress)
	assert.False(t, cfg.RSS.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"max posts too high", "MAX_POSTS", "500"},
		{"max articles zero", "MAX_ARTICLES", "0"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"malformed endpoint", "NEWS_API_ENDPOINT", "not a url"},
		{"not a number", "MAX_POSTS", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_AfterOverride(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.MaxPosts = 0
	assert.ErrorContains(t, cfg.Validate(), "invalid config")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ENV_DIR), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ENV_DIR, ".env.test"), []byte("BRANDPULSE_TEST_VALUE=loaded\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { _ = os.Unsetenv("BRANDPULSE_TEST_VALUE") })

	LoadEnv("test")
	assert.Equal(t, "loaded", os.Getenv("BRANDPULSE_TEST_VALUE"))

	// A missing file is tolerated.
	LoadEnv("missing")
}
