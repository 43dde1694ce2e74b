package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COREHUB_CONFIG", "")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, ":memory:", cfg.Activity.Path)
	assert.Equal(t, "CoreHub App", cfg.UI.Title)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[log]
level = "debug"
file = "/tmp/corehub.log"

[activity]
path = "/tmp/activity.sqlite"

[ui]
title = "Lab Console"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/corehub.log", cfg.Log.File)
	assert.Equal(t, "/tmp/activity.sqlite", cfg.Activity.Path)
	assert.Equal(t, "Lab Console", cfg.UI.Title)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COREHUB_CONFIG", "")
	t.Setenv("COREHUB_LOG_LEVEL", "warn")
	t.Setenv("COREHUB_UI_TITLE", "Bench")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Bench", cfg.UI.Title)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel = "), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
