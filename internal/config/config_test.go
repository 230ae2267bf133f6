package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gravitar.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
debug = true

[player]
health = 5

[world]
seed = 42
planets = 2

[controls]
left = "Left"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 5, cfg.Player.Health)
	assert.Equal(t, PlayerFuel, cfg.Player.Fuel)
	assert.Equal(t, int64(42), cfg.World.Seed)
	assert.Equal(t, 2, cfg.World.Planets)
	assert.Equal(t, BunkersPerPlanet, cfg.World.BunkersPerPlanet)
	assert.Equal(t, "Left", cfg.Controls.Left)
	assert.Equal(t, "D", cfg.Controls.Right)
	assert.Equal(t, ScreenWidth, cfg.Window.Width)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[player\nhealth = "))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[world]\nplacement_attempts = 0\n"))
	assert.ErrorContains(t, err, "placement_attempts")

	_, err = Load(writeConfig(t, "[audio]\nvolume = 2.0\n"))
	assert.ErrorContains(t, err, "volume")
}
