package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	yaml := `env: "dev"
http_server:
  address: "0.0.0.0:8080"
  timeout: 10s
storage:
  driver: "mysql"
  db_user: "alvares"
  db_name: "tabel"
files:
  tabel: "tabel.xlsx"
br_workers: 8
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "mysql", cfg.Storage.Driver)
	assert.Equal(t, "alvares", cfg.Storage.DBUser)
	assert.Equal(t, "tabel", cfg.Storage.DBName)
	assert.Equal(t, "tabel.xlsx", cfg.Files.Tabel)
	assert.Equal(t, 8, cfg.BRWorkers)

	// значення за замовчуванням
	assert.Equal(t, 3306, cfg.Storage.DBPort)
	assert.Equal(t, "output", cfg.Files.OutputDir)
	assert.Equal(t, "BR_4ShB.xlsx", cfg.Files.BR4ShB)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("br_workers: 8\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("BR_WORKERS", "2")
	t.Setenv("OUTPUT_DIR", "/tmp/br")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.BRWorkers)
	assert.Equal(t, "/tmp/br", cfg.Files.OutputDir)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_PATH", "test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "test.db", cfg.Storage.Path)
	assert.Equal(t, "localhost:4001", cfg.Address)
	assert.Equal(t, 4, cfg.BRWorkers)
}
