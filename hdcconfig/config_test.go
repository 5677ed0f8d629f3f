package hdcconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianhorn/HDC-Assymetric-CiM/hdcconfig"
)

func TestLoadDefaultsValidate(t *testing.T) {
	cfg, err := hdcconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Dim)
	assert.Equal(t, "PARETO", cfg.GA.SelectionMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HDC_DIM", "2048")
	t.Setenv("HDC_GA_SELECTION_MODE", "ACCURACY")
	t.Setenv("HDC_USE_GENETIC_ITEM_MEMORY", "true")

	cfg, err := hdcconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.Dim)
	assert.Equal(t, "ACCURACY", cfg.GA.SelectionMode)
	assert.True(t, cfg.UseGeneticItemMemory)
}

func TestLoadFileOverridesDefaultsButEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hdc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dim: 4096\nnum_features: 7\n"), 0o600))
	t.Setenv(hdcconfig.ConfigPathEnvVar, path)
	t.Setenv("HDC_DIM", "8192")

	cfg, err := hdcconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, 8192, cfg.Dim)
	assert.Equal(t, 7, cfg.NumFeatures)
}

func TestValidateRejectsOutOfRangeKnobs(t *testing.T) {
	cfg, err := hdcconfig.Load()
	require.NoError(t, err)

	cfg.NumLevels = 1
	assert.ErrorIs(t, cfg.Validate(), hdcconfig.ErrConfigInvalid)
}

func TestValidateRejectsWindowSmallerThanNGram(t *testing.T) {
	cfg, err := hdcconfig.Load()
	require.NoError(t, err)

	cfg.NGramSize = 5
	cfg.Window = 3
	assert.ErrorIs(t, cfg.Validate(), hdcconfig.ErrConfigInvalid)
}

func TestValidateRejectsBadGASelectionMode(t *testing.T) {
	cfg, err := hdcconfig.Load()
	require.NoError(t, err)

	cfg.UseGeneticItemMemory = true
	cfg.GA.SelectionMode = "BOGUS"
	assert.ErrorIs(t, cfg.Validate(), hdcconfig.ErrConfigInvalid)
}

func TestValidateRejectsTournamentLargerThanPopulation(t *testing.T) {
	cfg, err := hdcconfig.Load()
	require.NoError(t, err)

	cfg.UseGeneticItemMemory = true
	cfg.GA.TournamentSize = cfg.GA.PopulationSize + 1
	assert.ErrorIs(t, cfg.Validate(), hdcconfig.ErrConfigInvalid)
}
