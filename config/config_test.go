package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "naborly.db", c.DatabaseFile)
	assert.Equal(t, "community_posts.json", c.PostsFile)
	assert.Equal(t, "complaints.json", c.ComplaintsFile)
	assert.Equal(t, "services_listings.json", c.ListingsFile)
	assert.Equal(t, 20, c.FeedPageSize)
	assert.Equal(t, 200, c.DirectorySearchLimit)
	assert.Equal(t, "info", c.LogLevel)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	c := AppConfig{
		AppPort:      "9999",
		DataDir:      "/srv/portal",
		FeedPageSize: 5,
	}
	applyDefaults(&c)

	assert.Equal(t, "9999", c.AppPort)
	assert.Equal(t, "/srv/portal", c.DataDir)
	assert.Equal(t, 5, c.FeedPageSize)
	assert.Equal(t, "naborly.db", c.DatabaseFile)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "7777")
	t.Setenv("DATA_DIR", "/tmp/override")
	t.Setenv("FEED_PAGE_SIZE", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://one.example, http://two.example")
	t.Setenv("LOG_COMPRESS", "true")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	assert.Equal(t, "7777", c.AppPort)
	assert.Equal(t, "/tmp/override", c.DataDir)
	assert.Equal(t, 7, c.FeedPageSize)
	assert.Equal(t, []string{"http://one.example", "http://two.example"}, c.AllowedOrigins)
	assert.True(t, c.LogCompress)
}

func TestLoadJSONConfig_GroupedSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"app": {"AppPort": "9090", "RateLimitPerMinute": 12, "FeedPageSize": 9},
		"gin": {"Mode": "debug", "LogPath": "logs/custom-gin.log"},
		"storage": {"DataDir": "village-data", "DatabaseFile": "village.db", "PostsFile": "posts.json"},
		"log": {"Level": "warn", "MaxBackups": 9, "Compress": true}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "9090", c.AppPort)
	assert.Equal(t, 12, c.RateLimitPerMinute)
	assert.Equal(t, 9, c.FeedPageSize)
	assert.Equal(t, "debug", c.GinMode)
	assert.Equal(t, "logs/custom-gin.log", c.GinPath)
	assert.Equal(t, "village-data", c.DataDir)
	assert.Equal(t, "village.db", c.DatabaseFile)
	assert.Equal(t, "posts.json", c.PostsFile)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 9, c.LogMaxBackups)
	assert.True(t, c.LogCompress)
}

func TestLoadJSONConfig_FlatKeysAndErrors(t *testing.T) {
	dir := t.TempDir()

	flat := filepath.Join(dir, "flat.json")
	require.NoError(t, os.WriteFile(flat, []byte(`{"AppPort": "6060", "DataDir": "flatdata"}`), 0644))
	var c AppConfig
	require.NoError(t, loadJSONConfig(flat, &c))
	assert.Equal(t, "6060", c.AppPort)
	assert.Equal(t, "flatdata", c.DataDir)

	// A missing file is not an error; broken JSON is.
	var untouched AppConfig
	require.NoError(t, loadJSONConfig(filepath.Join(dir, "missing.json"), &untouched))
	assert.Equal(t, AppConfig{}, untouched)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{broken"), 0644))
	assert.Error(t, loadJSONConfig(bad, &untouched))
}

func TestPathHelpers(t *testing.T) {
	c := AppConfig{
		DataDir:        "/srv/portal/data",
		DatabaseFile:   "portal.db",
		PostsFile:      "community_posts.json",
		ComplaintsFile: "complaints.json",
		ListingsFile:   "services_listings.json",
	}

	assert.Equal(t, filepath.Join("/srv/portal/data", "portal.db"), c.DatabasePath())
	assert.Equal(t, filepath.Join("/srv/portal/data", "community_posts.json"), c.PostsPath())
	assert.Equal(t, filepath.Join("/srv/portal/data", "complaints.json"), c.ComplaintsPath())
	assert.Equal(t, filepath.Join("/srv/portal/data", "services_listings.json"), c.ListingsPath())
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim("a, b"))
	assert.Equal(t, []string{"one"}, splitAndTrim("  one  "))
	assert.Empty(t, splitAndTrim(" , ,"))
}
