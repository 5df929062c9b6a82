package xcodeproj

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/catalog"
	"github.com/Gamezxz/crypto-price-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator().WithLogger(logger.NewSilentLogger())
}

func TestGenerator_Paths(t *testing.T) {
	ops, err := newTestGenerator().Generate(Options{Root: "out", Project: DefaultProject()})
	require.NoError(t, err)
	require.Len(t, ops, 2)

	assert.Equal(t, filepath.Join("out", "BitcoinPriceStatusBar.xcodeproj", "project.pbxproj"),
		ops[0].(*generator.WriteFileOp).Path)
	assert.Equal(t, filepath.Join("out", catalog.DefaultDir, "Contents.json"),
		ops[1].(*generator.WriteFileOp).Path)
}

func TestGenerator_WritesFiles(t *testing.T) {
	root := t.TempDir()
	ops, err := newTestGenerator().Generate(Options{Root: root, Project: DefaultProject()})
	require.NoError(t, err)

	require.NoError(t, generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: os.Stderr}))

	manifest, err := os.ReadFile(filepath.Join(root, "BitcoinPriceStatusBar.xcodeproj", "project.pbxproj"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "rootObject = ")

	raw, err := os.ReadFile(filepath.Join(root, catalog.DefaultDir, "Contents.json"))
	require.NoError(t, err)
	var contents catalog.Contents
	require.NoError(t, json.Unmarshal(raw, &contents))
	assert.Len(t, contents.Images, 13)
}

func TestGenerator_InvalidProject(t *testing.T) {
	p := DefaultProject()
	p.BundleID = ""
	_, err := newTestGenerator().Generate(Options{Project: p})
	assert.ErrorContains(t, err, "bundle id is required")
}

func TestGenerator_MissingTemplateOverride(t *testing.T) {
	_, err := newTestGenerator().Generate(Options{
		Project:  DefaultProject(),
		Template: filepath.Join(t.TempDir(), "missing.tmpl"),
	})
	assert.ErrorContains(t, err, "failed to read template file")
}
