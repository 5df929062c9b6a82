package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"text/template"
)

// Renderer parses and executes text templates, caching parsed templates.
// It is safe for concurrent use.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with the built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template held in a string.
// The name is used for caching and error messages.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	tmpl, err := r.load("string:"+name, name, func() ([]byte, error) {
		return []byte(templateStr), nil
	})
	if err != nil {
		return nil, err
	}
	return r.execute(tmpl, data)
}

// RenderFS renders a template from a filesystem, usually an embed.FS.
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	tmpl, err := r.load("fs:"+path, path, func() ([]byte, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return r.execute(tmpl, data)
}

// RenderFile renders a template from disk (for --template overrides).
func (r *Renderer) RenderFile(path string, data any) ([]byte, error) {
	tmpl, err := r.load("file:"+path, path, func() ([]byte, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template file '%s': %w", path, err)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return r.execute(tmpl, data)
}

// ClearCache drops all parsed templates
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) load(key, name string, read func() ([]byte, error)) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	src, err := read()
	if err != nil {
		return nil, err
	}

	// missingkey=error: a misspelled role must not render as "<no value>".
	tmpl, err = template.New(name).Funcs(r.funcMap).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[key] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

func (r *Renderer) execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"quote": Quote,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
		"join":  strings.Join,
	}
}

// Quote wraps a string in double quotes, escaping as Go does
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}
