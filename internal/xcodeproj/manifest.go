package xcodeproj

import (
	"embed"
	"fmt"

	"github.com/Gamezxz/crypto-price-tracker/generator"
)

//go:embed templates/project.pbxproj.tmpl
var templates embed.FS

const templatePath = "templates/project.pbxproj.tmpl"

// ManifestFile is the manifest's name inside the .xcodeproj bundle.
const ManifestFile = "project.pbxproj"

type manifestData struct {
	IDs     map[string]string
	Project Project
}

var defaultRenderer = generator.NewRenderer()

// Render produces the manifest for ids and project from the built-in template.
func Render(ids IdentifierSet, project Project) ([]byte, error) {
	return render(defaultRenderer, "", ids, project)
}

// render uses the template at override when set, the embedded one otherwise.
func render(r *generator.Renderer, override string, ids IdentifierSet, project Project) ([]byte, error) {
	for _, role := range Roles {
		if ids[role] == "" {
			return nil, fmt.Errorf("no identifier for role %s", role)
		}
	}

	data := manifestData{IDs: ids.templateData(), Project: project}
	if override != "" {
		return r.RenderFile(override, data)
	}
	return r.RenderFS(templates, templatePath, data)
}
