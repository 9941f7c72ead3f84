package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "pattern: email\nfull: true\n")

	cfg, err := loadConfig(path, Config{MaxDepth: 10, Color: "auto"})
	require.NoError(t, err)
	assert.Equal(t, Config{Pattern: "email", Full: true, MaxDepth: 10, Color: "auto"}, cfg)

	_, err = loadConfig(writeConfig(t, "pattern: [unclosed\n"), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestResolveConfigFlagsWin(t *testing.T) {
	resetCheckFlags(t)
	configPath = writeConfig(t, "pattern: email\nmax_depth: 64\ncolor: always\n")

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&checkPattern, "pattern", "", "")
	cmd.Flags().IntVar(&checkMaxDepth, "max-depth", 0, "")
	require.NoError(t, cmd.Flags().Set("pattern", "phone"))

	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "phone", cfg.Pattern)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Equal(t, "always", cfg.Color)
}

func TestResolveConfigValidation(t *testing.T) {
	resetCheckFlags(t)
	checkColor = "sometimes"

	_, err := resolveConfig(&cobra.Command{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")

	resetCheckFlags(t)
	configPath = writeConfig(t, "max_depth: -1\n")

	_, err = resolveConfig(&cobra.Command{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max depth")
}
