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
	for _, k := range []string{"APP_ENV", "STOREFRONT_CONFIG", "PORT", "WEB_ROOT", "SESSION_MAX_AGE", "SESSION_SECRET"} {
		t.Setenv(k, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "wwwroot", cfg.Uploads.WebRoot)
	assert.NotEmpty(t, cfg.Session.Secret, "dev mode gets a fallback secret")
	assert.Equal(t, 30*time.Minute, cfg.Session.MaxAge)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: prod
port: "9000"
session:
  secret: from-yaml
  max_age: 1h
uploads:
  web_root: /srv/www
redis:
  addr: redis:6379
`), 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("APP_ENV", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9100", cfg.Port, "env overrides yaml")
	assert.Equal(t, "from-yaml", cfg.Session.Secret)
	assert.Equal(t, time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "/srv/www", cfg.Uploads.WebRoot)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestValidate_RequiresSecretOutsideDev(t *testing.T) {
	cfg := Default()
	cfg.Env = "prod"
	assert.Error(t, cfg.Validate())

	cfg.Session.Secret = "s3cret"
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Run("CORS origins are split and trimmed", func(t *testing.T) {
		t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	})

	t.Run("session flags", func(t *testing.T) {
		t.Setenv("SESSION_SECURE", "true")
		t.Setenv("SESSION_MAX_AGE", "2h")
		cfg := Default()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Session.Secure)
		assert.Equal(t, 2*time.Hour, cfg.Session.MaxAge)
	})

	t.Run("bad duration keeps default", func(t *testing.T) {
		t.Setenv("SESSION_MAX_AGE", "soon")
		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, 30*time.Minute, cfg.Session.MaxAge)
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "shop"}
	assert.Equal(t, "host=db user=u password=p dbname=shop port=5432 sslmode=disable", d.DSN())

	d.URL = "postgres://u:p@db/shop"
	assert.Equal(t, "postgres://u:p@db/shop", d.DSN())
}

func TestValidate_BackupSchedule(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Backup.Hour)
	assert.Equal(t, 96*time.Hour, cfg.Backup.Retention)

	cfg.Backup.Hour = 24
	assert.Error(t, cfg.Validate())

	cfg.Backup.Hour = 3
	cfg.Backup.Minute = -1
	assert.Error(t, cfg.Validate())
}
