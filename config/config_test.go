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
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  dsn: "file::memory:"
jwt:
  secret: s3cret
`))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 10, cfg.Pagination.PostsPerPage)
	assert.Equal(t, 20*time.Second, cfg.Cache.IndexTTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "jwt:\n  secret: file\n"))
	t.Setenv("YATUBE_JWT_SECRET", "from-env")
	t.Setenv("YATUBE_PAGINATION_POSTS_PER_PAGE", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 25, cfg.Pagination.PostsPerPage)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:     ServerConfig{Mode: "debug"},
			Database:   DatabaseConfig{Driver: "sqlite"},
			Pagination: PaginationConfig{PostsPerPage: 10},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Pagination.PostsPerPage = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.Mode = "release"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Redis.Enabled = true
	assert.Error(t, cfg.Validate())
}
