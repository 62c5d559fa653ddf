package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/diario/internal/storage"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config, err := storage.LoadConfig(storage.NewViper(), "")
	assert.NilError(t, err)

	assert.Equal(t, config.Catalog, "")
	assert.Equal(t, config.LogLevel, "warn")
	assert.Equal(t, config.Mouse, true)
	assert.Equal(t, config.ExportDir, filepath.Join(home, "Downloads"))
}

func TestLoadConfig_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "diario")
	assert.NilError(t, os.MkdirAll(dir, 0755))
	data := "catalog: ~/journals/db.yaml\nlog_level: debug\nmouse: false\n"
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0644))

	config, err := storage.LoadConfig(storage.NewViper(), "")
	assert.NilError(t, err)

	assert.Equal(t, config.Catalog, filepath.Join(home, "journals", "db.yaml"))
	assert.Equal(t, config.LogLevel, "debug")
	assert.Equal(t, config.Mouse, false)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))
	t.Setenv("DIARIO_LOG_LEVEL", "error")

	config, err := storage.LoadConfig(storage.NewViper(), path)
	assert.NilError(t, err)
	assert.Equal(t, config.LogLevel, "error")
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, err := storage.LoadConfig(storage.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")
}
