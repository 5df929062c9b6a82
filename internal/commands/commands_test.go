package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gamezxz/crypto-price-tracker/internal/catalog"
	"github.com/Gamezxz/crypto-price-tracker/internal/config"
	"github.com/Gamezxz/crypto-price-tracker/internal/logger"
	"github.com/Gamezxz/crypto-price-tracker/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes appgen with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		output.SetWriter(nil)
		output.SetVerbose(false)
		logger.SetDefault(logger.NewLogger(logger.LevelWarn, os.Stderr))
	})

	var out, errOut bytes.Buffer
	cmd := NewApp()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func iconFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestIcons_WritesIconSet(t *testing.T) {
	root := t.TempDir()
	out, err := run(t, "icons", "--out", root, "--workers", "4")
	require.NoError(t, err)

	dir := filepath.Join(root, catalog.DefaultDir)
	names := iconFiles(t, dir)
	assert.Len(t, names, 14)
	assert.Contains(t, names, "icon_16x16.png")
	assert.Contains(t, names, "icon_512x512@2x.png")
	assert.Contains(t, names, "icon_1024x1024.png")
	assert.NotContains(t, names, "icon_1024x1024@2x.png")
	assert.Contains(t, out, "Wrote 14 files")

	raw, err := os.ReadFile(filepath.Join(dir, catalog.ContentsFile))
	require.NoError(t, err)
	var contents catalog.Contents
	require.NoError(t, json.Unmarshal(raw, &contents))
	assert.Len(t, contents.Images, 13)

	// Rendering is deterministic, so a second run changes nothing.
	out, err = run(t, "icons", "--out", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 0 files (14 identical, 0 skipped)")
}

func TestXcodeproj_WritesManifest(t *testing.T) {
	root := t.TempDir()
	_, err := run(t, "xcodeproj", "-o", root, "--name", "EthTicker", "--bundle-id", "com.example.eth")
	require.NoError(t, err)

	manifest, err := os.ReadFile(filepath.Join(root, "EthTicker.xcodeproj", "project.pbxproj"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `PRODUCT_BUNDLE_IDENTIFIER = "com.example.eth";`)
	assert.Contains(t, string(manifest), `INFOPLIST_KEY_CFBundleDisplayName = "Crypto Price Tracker";`)

	_, err = os.Stat(filepath.Join(root, catalog.DefaultDir, catalog.ContentsFile))
	assert.NoError(t, err)
}

func TestXcodeproj_SkipKeepsExistingManifest(t *testing.T) {
	root := t.TempDir()
	_, err := run(t, "xcodeproj", "-o", root)
	require.NoError(t, err)

	path := filepath.Join(root, "BitcoinPriceStatusBar.xcodeproj", "project.pbxproj")
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := run(t, "xcodeproj", "-o", root, "--skip")
	require.NoError(t, err)
	assert.Contains(t, out, "• Skip")

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = run(t, "xcodeproj", "-o", root, "--force")
	require.NoError(t, err)
	third, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestAll_WritesContentsOnce(t *testing.T) {
	root := t.TempDir()
	out, err := run(t, "all", "-o", root)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, catalog.ContentsFile))
	assert.Contains(t, out, "Wrote 15 files")
	assert.FileExists(t, filepath.Join(root, "BitcoinPriceStatusBar.xcodeproj", "project.pbxproj"))
	assert.Len(t, iconFiles(t, filepath.Join(root, catalog.DefaultDir)), 14)
}

func TestDryRun_WritesNothing(t *testing.T) {
	root := t.TempDir()
	out, err := run(t, "xcodeproj", "-o", root, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "[DRY RUN]")
	assert.Contains(t, out, "Dry run: 2 files would be written")
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConflictingFlags(t *testing.T) {
	_, err := run(t, "xcodeproj", "-o", t.TempDir(), "--force", "--skip")
	assert.ErrorContains(t, err, "cannot be combined")
}

func TestInvalidProjectFlag(t *testing.T) {
	_, err := run(t, "xcodeproj", "-o", t.TempDir(), "--name", "Bad Name")
	assert.ErrorContains(t, err, "name")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "appgen.yml")
	root := filepath.Join(dir, "build")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"output:\n  root: "+root+"\nproject:\n  name: FromConfig\n"), 0644))

	_, err := run(t, "xcodeproj", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "FromConfig.xcodeproj", "project.pbxproj"))

	// Flags win over the file.
	_, err = run(t, "xcodeproj", "--config", cfgPath, "--name", "FromFlag")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "FromFlag.xcodeproj", "project.pbxproj"))
}

func TestConfigFile_ExplicitMissing(t *testing.T) {
	_, err := run(t, "icons", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appgen.yml")
	out, err := run(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "appgen all")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)

	require.NoError(t, os.WriteFile(path, []byte("project:\n  name: Mine\n"), 0644))
	_, err = run(t, "init", "--config", path, "--skip")
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "project:\n  name: Mine\n", string(raw))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "appgen "))
}

func TestMerge(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	icons, err := iconOps(context.Background(), &cfg, root)
	require.NoError(t, err)
	manifest, err := manifestOps(&cfg, root, "")
	require.NoError(t, err)

	merged := merge(icons, manifest)
	assert.Len(t, merged, len(icons)+1)
}
