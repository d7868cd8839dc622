package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "warden.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.NotEmpty(t, cfg.Auth.MasterResetKey)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: mysql
  host: db.internal
  port: 3307
  username: warden
  password: secret
  database: warden

auth:
  bcrypt_cost: 12
  master_reset_key: "DEPLOYMENT-KEY"

logger:
  level: debug
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "DEPLOYMENT-KEY", cfg.Auth.MasterResetKey)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		dir := writeConfig(t, `
database:
  driver: postgres
`)
		_, err := Load(dir)
		assert.Error(t, err)
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		dir := writeConfig(t, `
auth:
  bcrypt_cost: 99
`)
		_, err := Load(dir)
		assert.Error(t, err)
	})

	t.Run("blank reset key", func(t *testing.T) {
		dir := writeConfig(t, `
auth:
  master_reset_key: ""
`)
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestGet_ReturnsLoadedConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Same(t, cfg, Get())
}
