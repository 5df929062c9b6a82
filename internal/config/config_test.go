package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gamezxz/crypto-price-tracker/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile), false)
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, catalog.DefaultDir, cfg.Output.Icons)
	assert.Equal(t, "BitcoinPriceStatusBar", cfg.Project.Name)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), true)
	assert.ErrorContains(t, err, "failed to read")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	writeFile(t, path, `
output:
  root: build
project:
  name: EthTicker
  bundle_id: com.example.eth
render:
  workers: 3
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.Output.Root)
	assert.Equal(t, catalog.DefaultDir, cfg.Output.Icons)
	assert.Equal(t, "EthTicker", cfg.Project.Name)
	assert.Equal(t, "com.example.eth", cfg.Project.BundleID)
	assert.Equal(t, "Crypto Price Tracker", cfg.Project.DisplayName)
	assert.Equal(t, 3, cfg.Render.Workers)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	writeFile(t, path, "project:\n  name: FromFile\n")
	t.Setenv("APPGEN_PROJECT_NAME", "FromEnv")
	t.Setenv("APPGEN_RENDER_WORKERS", "2")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.Project.Name)
	assert.Equal(t, 2, cfg.Render.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"negative workers", "render:\n  workers: -1\n", "render.workers"},
		{"absolute icons", "output:\n  icons: /tmp/icons\n", "output.icons"},
		{"broken yaml", "project: [\n", "failed to read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			writeFile(t, path, tt.content)
			_, err := Load(path, true)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))

	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "APPGEN_PROJECT_BUNDLE_ID=com.example.dotenv\n")
	t.Setenv("APPGEN_PROJECT_BUNDLE_ID", "")
	os.Unsetenv("APPGEN_PROJECT_BUNDLE_ID")

	require.NoError(t, LoadDotEnv(envPath))
	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, "com.example.dotenv", cfg.Project.BundleID)
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	want := Default()
	want.Project.Name = "Saved"
	want.Render.Workers = 4

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# appgen configuration")
	assert.Contains(t, string(raw), "bundle_id: com.crypto.pricetracker")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, want, decoded)

	got, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
