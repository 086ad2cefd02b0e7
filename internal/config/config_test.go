package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, SaveAtomic(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default().Keywords.Primary, cfg.Keywords.Primary)
	assert.Equal(t, 100, cfg.Pipeline.MaxPostings)
	assert.Equal(t, 10, cfg.Keywords.Weights["超声神经调控"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidateDefaultIsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.App.Port = 0 }},
		{"zero retention", func(c *Config) { c.Pipeline.MaxPostings = 0 }},
		{"no primary keywords", func(c *Config) { c.Keywords.Primary = nil }},
		{"empty keyword term", func(c *Config) { c.Keywords.Secondary = []string{""} }},
		{"non-positive weight", func(c *Config) { c.Keywords.Weights = map[string]int{"电生理": 0} }},
		{"mailbox enabled without host", func(c *Config) { c.Sources.Mailbox.Enabled = true }},
		{"notify enabled without smtp", func(c *Config) { c.Notify.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestNormalizeDedupesAndTrims(t *testing.T) {
	cfg := Default()
	cfg.Keywords.Secondary = []string{" 电生理 ", "电生理", "脑电图"}

	out, res := NormalizeAndValidate(cfg)

	assert.True(t, res.OK())
	assert.Equal(t, []string{"电生理", "脑电图"}, out.Keywords.Secondary)
}

func TestNormalizeDropsSecondaryShadowedByPrimary(t *testing.T) {
	cfg := Default()
	cfg.Keywords.Secondary = []string{"脑机接口", "脑电图", "肌电图"}

	out, res := NormalizeAndValidate(cfg)

	assert.NotContains(t, out.Keywords.Secondary, "脑机接口")
	assert.NotEmpty(t, res.Warnings)
}

func TestNormalizeWarnsWhenNoSourcesEnabled(t *testing.T) {
	cfg := Default()
	cfg.Sources.Sciencenet.Enabled = false
	cfg.Sources.Gaoxiaojob.Enabled = false

	_, res := NormalizeAndValidate(cfg)

	require.NotEmpty(t, res.Warnings)
	// the warning states the actual behavior: no ingestion, no fallback
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "ingest nothing")
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, SaveAtomic(path, Default()))

	second := Default()
	second.App.Port = 40000
	require.NoError(t, SaveAtomic(path, second))

	_, err := os.Stat(path + ".bak")
	assert.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000, cfg.App.Port)
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.yml")
	require.NoError(t, SaveAtomic(defaultPath, Default()))

	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	seed, err := os.ReadFile(defaultPath)
	require.NoError(t, err)
	got, err := os.ReadFile(userPath)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	// second call returns the existing file untouched
	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, userPath, again)
}

func TestEnsureUserConfigMissingDefault(t *testing.T) {
	_, err := EnsureUserConfig(t.TempDir(), filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
