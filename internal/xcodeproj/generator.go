package xcodeproj

import (
	"path/filepath"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/catalog"
	"github.com/Gamezxz/crypto-price-tracker/internal/logger"
)

// Options configures a manifest run.
type Options struct {
	Root     string // output root; empty means the working directory
	Project  Project
	IconDir  string // icon set directory; defaults to catalog.DefaultDir
	Template string // optional template file replacing the built-in one
}

// Generator produces the manifest and the icon set's Contents.json.
type Generator struct {
	log      logger.Logger
	renderer *generator.Renderer
	newIDs   func() (IdentifierSet, error)
}

// NewGenerator creates a manifest generator logging to the default logger.
func NewGenerator() *Generator {
	return &Generator{
		log:      logger.Default().WithFields(logger.F("generator", "xcodeproj")),
		renderer: generator.NewRenderer(),
		newIDs:   NewIdentifierSet,
	}
}

// WithLogger replaces the generator's logger.
func (g *Generator) WithLogger(l logger.Logger) *Generator {
	g.log = l
	return g
}

// Generate returns the write operations for <Root>/<Name>.xcodeproj/project.pbxproj
// and <Root>/<IconDir>/Contents.json.
func (g *Generator) Generate(opts Options) ([]generator.Operation, error) {
	if err := opts.Project.Validate(); err != nil {
		return nil, err
	}
	iconDir := opts.IconDir
	if iconDir == "" {
		iconDir = catalog.DefaultDir
	}

	ids, err := g.newIDs()
	if err != nil {
		return nil, err
	}
	for _, role := range Roles {
		g.log.Debug("Assigned identifier", logger.F("role", role), logger.F("id", ids[role]))
	}

	manifest, err := render(g.renderer, opts.Template, ids, opts.Project)
	if err != nil {
		return nil, err
	}
	contents, err := catalog.DefaultContents()
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(opts.Root, opts.Project.Name+".xcodeproj", ManifestFile)
	g.log.Info("Rendered manifest",
		logger.F("path", manifestPath),
		logger.F("bytes", len(manifest)),
		logger.F("template", templateName(opts.Template)))

	return []generator.Operation{
		&generator.WriteFileOp{Path: manifestPath, Content: manifest, Mode: 0644},
		&generator.WriteFileOp{Path: filepath.Join(opts.Root, iconDir, catalog.ContentsFile), Content: contents, Mode: 0644},
	}, nil
}

func templateName(override string) string {
	if override == "" {
		return "built-in"
	}
	return override
}
