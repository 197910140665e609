package config

import (
	"os"
	"path/filepath"
	"testing"

	"colored-cube/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(45), cfg.Perspective().FovY)
	assert.Equal(t, float32(0.1), cfg.Perspective().Near)
	assert.Equal(t, float32(50), cfg.Perspective().Far)
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, cfg.StartPosition())
	assert.Equal(t, render.Smooth, cfg.ShadingMode())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	data := `
window:
  width: 1024
camera:
  rotate_speed: 90
  start: [0, 1, 5]
shading: flat
axes: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Colored Cube", cfg.Window.Title)
	assert.Equal(t, float32(90), cfg.Speeds().Rotate)
	assert.Equal(t, float32(2), cfg.Speeds().Move)
	assert.Equal(t, mgl32.Vec3{0, 1, 5}, cfg.StartPosition())
	assert.Equal(t, render.Flat, cfg.ShadingMode())
	assert.True(t, cfg.Axes)
}

func TestLoadInvalidFallsBack(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"syntax":  "window: [",
		"size":    "window:\n  width: 0\n",
		"clip":    "camera:\n  near: 5\n  far: 1\n",
		"fov":     "camera:\n  fov_y: 180\n",
		"shading": "shading: toon\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))
			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cube.yaml")
	cfg := Default()
	cfg.Debug = true
	cfg.Camera.Start = [3]float32{1, 2, 3}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(EnvPath, "/tmp/other.yaml")
	assert.Equal(t, "/tmp/other.yaml", Path())
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	t.Setenv(EnvDebug, "1")
	require.NoError(t, cfg.ApplyEnv())
	assert.True(t, cfg.Debug)

	t.Setenv(EnvDebug, "false")
	require.NoError(t, cfg.ApplyEnv())
	assert.False(t, cfg.Debug)

	t.Setenv(EnvDebug, "maybe")
	assert.Error(t, cfg.ApplyEnv())
}

func TestStartup(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	cfgFile := filepath.Join(dir, "cube.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("window:\n  title: From File\n"), 0644))
	require.NoError(t, os.WriteFile(envFile, []byte(EnvPath+"="+cfgFile+"\n"+EnvDebug+"=true\n"), 0644))
	t.Setenv(EnvPath, "")
	t.Setenv(EnvDebug, "")
	os.Unsetenv(EnvPath)
	os.Unsetenv(EnvDebug)

	cfg, report := Startup(envFile)
	assert.Empty(t, report.Warnings)
	assert.ElementsMatch(t, []string{EnvPath, EnvDebug}, report.EnvKeys)
	assert.Equal(t, "From File", cfg.Window.Title)
	assert.True(t, cfg.Debug)
}

func TestStartupWarnsOnBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "cube.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("camera:\n  far: -1\n"), 0644))
	t.Setenv(EnvPath, cfgFile)
	t.Setenv(EnvDebug, "nope")

	cfg, report := Startup(filepath.Join(dir, "missing.env"))
	assert.Empty(t, report.EnvKeys)
	assert.Len(t, report.Warnings, 2)
	assert.Equal(t, Default(), cfg)
}
