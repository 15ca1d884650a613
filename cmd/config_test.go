package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.Equal(t, &config{Format: "%Y-%m-%d %H:%M:%S", Delimiter: " - "}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.ini")
	contents := `
[search]
format = 2006-01-02T15:04:05
delimiter = " | "
target = 2023-04-01T12:30:45
encoding = UTF-16LE

[log]
verbose = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02T15:04:05", cfg.Format)
	assert.Equal(t, " | ", cfg.Delimiter)
	assert.Equal(t, "2023-04-01T12:30:45", cfg.Target)
	assert.Equal(t, "UTF-16LE", cfg.Encoding)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ini")
	require.NoError(t, os.WriteFile(path, []byte("[search\nformat"), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
