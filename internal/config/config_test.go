package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
mongodb:
  uri: "mongodb://localhost:27017"
  database: cliphub
auth:
  secret: "test-secret"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "cloudinary", cfg.Storage.Driver)
	assert.Equal(t, int64(100<<20), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
}

func TestLoadRequiredFields(t *testing.T) {
	_, err := Load(writeConfig(t, `
auth:
  secret: "test-secret"
`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `
mongodb:
  uri: "mongodb://localhost:27017"
`))
	assert.Error(t, err)
}

func TestOrigins(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.Origins())

	cfg.App.AllowedOrigins = "http://localhost:3000, https://cliphub.example.com ,"
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://cliphub.example.com"},
		cfg.Origins())
}
