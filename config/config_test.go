package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/motion-fighter/parameter"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, parameter.TrackerMaxTrails, cfg.Tracker.MaxTrails)
	assert.Equal(t, parameter.PoolSlots, cfg.Pool.Slots)
	assert.Equal(t, parameter.SpawnBaseRate, cfg.Pool.SpawnRate)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	body := "log:\n  level: debug\npool:\n  spawnRate: 2.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "motion-fighter.yaml"), []byte(body), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2.5, cfg.Pool.SpawnRate)
	// Untouched keys keep defaults
	assert.Equal(t, parameter.SpawnBaseCap, cfg.Pool.SpawnCap)
}

func TestRuntimeClamping(t *testing.T) {
	r := NewRuntime(parameter.SpawnBaseRate, parameter.SpawnBaseCap)

	r.SetSpawnRate(-5)
	assert.Equal(t, 0.1, r.SpawnRate())
	r.SetSpawnRate(1000)
	assert.Equal(t, 10.0, r.SpawnRate())

	r.SetSpawnCap(0)
	assert.Equal(t, 1, r.SpawnCap())
	r.SetSpawnCap(parameter.PoolSlots + 50)
	assert.Equal(t, parameter.PoolSlots, r.SpawnCap())

	r.SetSpeedMultiplier(99)
	assert.Equal(t, parameter.SpeedMultMax, r.SpeedMultiplier())
	r.SetSpeedMultiplier(0)
	assert.Equal(t, parameter.SpeedMultMin, r.SpeedMultiplier())

	r.SetScaleMultiplier(0)
	assert.Equal(t, parameter.ScaleMultMin, r.ScaleMultiplier())

	r.SetQuality(QualityLevel(42))
	assert.Equal(t, QualityHigh, r.Quality())
	r.SetQuality(QualityLevel(-1))
	assert.Equal(t, QualityLow, r.Quality())
}

func TestQualityMultiplierLadder(t *testing.T) {
	r := NewRuntime(parameter.SpawnBaseRate, parameter.SpawnBaseCap)

	r.SetQuality(QualityLow)
	low := r.QualityMultiplier()
	r.SetQuality(QualityMedium)
	med := r.QualityMultiplier()
	r.SetQuality(QualityHigh)
	high := r.QualityMultiplier()

	assert.Less(t, low, med)
	assert.Less(t, med, high)
	assert.Equal(t, parameter.QualityMultMax, high)
}
