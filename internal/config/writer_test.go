package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfig_RoundTripsThroughLoader(t *testing.T) {
	dir := t.TempDir()
	withConfigPaths(t, dir)

	path := filepath.Join(dir, "nested", "explicit.yaml")
	require.NoError(t, WriteConfig(path, OnboardConfig{
		Site: "https://shop.example",
		API:  APIConfig{Username: "${ONBOARDCTL_USER}"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "title", "zero fields are omitted")

	t.Setenv("ONBOARDCTL_USER", "merchant")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example", cfg.Site)
	assert.Equal(t, "merchant", cfg.API.Username)
	assert.Equal(t, DefaultTitle, cfg.Title)
}

func TestConfigPaths(t *testing.T) {
	dir := t.TempDir()
	withConfigPaths(t, dir)

	user, err := UserConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "user.yaml"), user)

	project, err := ProjectConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "project.yaml"), project)
}
