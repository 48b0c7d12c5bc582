package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "usda", cfg.OutputFormat)
	assert.Equal(t, PolicyPreferComponents, cfg.DualDirectoryPolicy)
	assert.Equal(t, "Y", cfg.Stage.UpAxis)
	assert.Equal(t, 1.0, cfg.Stage.MetersPerUnit)
	assert.Contains(t, cfg.Textures.Extensions, ".exr")
	assert.Equal(t, "default", cfg.Textures.DefaultVariantName)
	assert.NoError(t, cfg.Validate())
}

func TestWithDefaultsFillsZeroValues(t *testing.T) {
	cfg := (&Config{DualDirectoryPolicy: PolicyError}).WithDefaults()

	assert.Equal(t, PolicyError, cfg.DualDirectoryPolicy, "explicit value survives")
	assert.Equal(t, "usda", cfg.OutputFormat)
	assert.NotEmpty(t, cfg.Textures.Extensions)
	assert.Positive(t, cfg.Workers)
}

func TestValidate(t *testing.T) {
	t.Run("rejects unknown output format", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OutputFormat = "usdc"
		assert.ErrorContains(t, cfg.Validate(), "output format")
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DualDirectoryPolicy = "coin-flip"
		assert.ErrorContains(t, cfg.Validate(), "dualDirectoryPolicy")
	})

	t.Run("rejects bad up axis", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Stage.UpAxis = "X"
		assert.ErrorContains(t, cfg.Validate(), "up axis")
	})

	t.Run("rejects extension without dot", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Textures.Extensions = []string{"jpg"}
		assert.ErrorContains(t, cfg.Validate(), "dot")
	})
}

func TestLoaderReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "outputFormat: usda\ndualDirectoryPolicy: error\nstage:\n  upAxis: Z\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, PolicyError, cfg.DualDirectoryPolicy)
	assert.Equal(t, "Z", cfg.Stage.UpAxis)
	assert.Equal(t, 1.0, cfg.Stage.MetersPerUnit, "default applied")
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "usda", cfg.OutputFormat)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/x/y.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "y.yaml"), expanded)

	plain, err := ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", plain)
}
