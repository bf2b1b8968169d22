package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "0.0.0.0"
database:
  host: localhost
  port: 5432
  user: app
  password: secret
  dbname: fixtures
  sslmode: disable
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3001", cfg.Server.Addr())
	assert.Equal(t, "https://www.zerozero.pt", cfg.Source.BaseURL)
	assert.Equal(t, "https://cdn-img.zerozero.pt", cfg.Source.CDNBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Source.RequestDelay)
	assert.Equal(t, 3, cfg.Source.Retry.MaxAttempts)
	assert.Equal(t, "Sporting", cfg.Club.Name)
	assert.Equal(t, "Estádio José de Alvalade", cfg.Club.HomeVenue)
	assert.Equal(t, "images", cfg.Assets.Dir)
	assert.Len(t, cfg.Assets.TeamBases, 2)
	assert.Len(t, cfg.Assets.LeagueBases, 2)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
source:
  request_delay: 2s
  retry:
    max_attempts: 5
club:
  name: "Benfica"
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Source.RequestDelay)
	assert.Equal(t, 5, cfg.Source.Retry.MaxAttempts)
	assert.Equal(t, "Benfica", cfg.Club.Name)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
database:
  host: ${TEST_DB_HOST}
  port: 5432
  user: app
  password: ${TEST_DB_PASSWORD}
  dbname: fixtures
  sslmode: disable
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t,
		"host=db.internal port=5432 user=app password=s3cret dbname=fixtures sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: a: mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
