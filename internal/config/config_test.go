package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(Te *testing.T, body string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "gocrys.toml")
	require.NoError(Te, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(Te *testing.T) {
	c := Default()
	assert.Equal(Te, "info", c.Log.Level)
	assert.False(Te, c.Log.JSON)
	assert.Equal(Te, "xyz", c.Output.Format)
	assert.Equal(Te, 0, c.Output.CompressLevel)
	assert.Equal(Te, 20, c.Plot.Bins)
	assert.InDelta(Te, 5.0, c.Plot.WidthIn, 1e-12)
	assert.InDelta(Te, 4.0, c.Plot.HeightIn, 1e-12)
	assert.InDelta(Te, 0.6, c.Check.ClashScale, 1e-12)
}

func TestLoadFromFile(Te *testing.T) {
	path := writeTOML(Te, `
[log]
level = "debug"
json = true

[output]
format = "cif"
compress_level = 3

[plot]
bins = 40
`)
	c, err := LoadFromFile(path)
	require.NoError(Te, err)
	assert.Equal(Te, "debug", c.Log.Level)
	assert.True(Te, c.Log.JSON)
	assert.Equal(Te, "cif", c.Output.Format)
	assert.Equal(Te, 3, c.Output.CompressLevel)
	assert.Equal(Te, 40, c.Plot.Bins)
	assert.InDelta(Te, 5.0, c.Plot.WidthIn, 1e-12) //untouched default
}

func TestLoadMissingFile(Te *testing.T) {
	_, err := LoadFromFile(filepath.Join(Te.TempDir(), "nope.toml"))
	assert.Error(Te, err)
	_, err = Load(filepath.Join(Te.TempDir(), "nope.toml"))
	assert.Error(Te, err)
}

func TestLoadEnvOverride(Te *testing.T) {
	path := writeTOML(Te, "[output]\nformat = \"pdb\"\n")
	Te.Setenv("GOCRYS_OUTPUT_FORMAT", "stru")
	Te.Setenv("GOCRYS_LOG_LEVEL", "warn")
	c, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, "stru", c.Output.Format)
	assert.Equal(Te, "warn", c.Log.Level)
}

func TestLoadSearchPath(Te *testing.T) {
	dir := Te.TempDir()
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "gocrys.toml"), []byte("[plot]\nbins = 7\n"), 0o644))
	Te.Setenv("HOME", Te.TempDir())
	Te.Chdir(dir)
	c, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, 7, c.Plot.Bins)
}

func TestLoadNoFile(Te *testing.T) {
	Te.Setenv("HOME", Te.TempDir())
	Te.Chdir(Te.TempDir())
	c, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, "xyz", c.Output.Format)
}

func TestBadBins(Te *testing.T) {
	path := writeTOML(Te, "[plot]\nbins = 0\n")
	_, err := LoadFromFile(path)
	assert.Error(Te, err)
}
