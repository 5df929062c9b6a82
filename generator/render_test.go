package generator

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.tmpl
var testFS embed.FS

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	assert.NotNil(t, r.funcMap)
	assert.Empty(t, r.cache)
}

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		errContains string
	}{
		{
			name:        "plain text",
			templateStr: "// !$*UTF8*$!",
			expected:    "// !$*UTF8*$!",
		},
		{
			name:        "struct data",
			templateStr: "name = {{ .Name }};",
			data:        struct{ Name string }{Name: "BitcoinPriceStatusBar"},
			expected:    "name = BitcoinPriceStatusBar;",
		},
		{
			name:        "map data",
			templateStr: "{{ .IDs.project }} /* Project object */",
			data:        map[string]any{"IDs": map[string]string{"project": "ABC123"}},
			expected:    "ABC123 /* Project object */",
		},
		{
			name:        "quote helper",
			templateStr: "INFOPLIST_KEY_CFBundleDisplayName = {{ quote .Name }};",
			data:        struct{ Name string }{Name: "Crypto Price Tracker"},
			expected:    `INFOPLIST_KEY_CFBundleDisplayName = "Crypto Price Tracker";`,
		},
		{
			name:        "syntax error",
			templateStr: "{{ .Name }",
			errContains: "failed to parse template",
		},
		{
			name:        "missing struct field",
			templateStr: "{{ .NonExistent }}",
			data:        struct{}{},
			errContains: "failed to render template",
		},
		{
			name:        "missing map key",
			templateStr: "{{ .IDs.typo }}",
			data:        map[string]any{"IDs": map[string]string{"project": "ABC"}},
			errContains: "failed to render template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderString(tt.name, tt.templateStr, tt.data)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestRenderString_Caches(t *testing.T) {
	r := NewRenderer()

	_, err := r.RenderString("cached", "{{ .Name }}", struct{ Name string }{"a"})
	require.NoError(t, err)
	assert.Len(t, r.cache, 1)

	// Same name hits the cache, even with different source text.
	out, err := r.RenderString("cached", "ignored", struct{ Name string }{"b"})
	require.NoError(t, err)
	assert.Equal(t, "b", string(out))

	r.ClearCache()
	assert.Empty(t, r.cache)
}

func TestRenderFS(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderFS(testFS, "testdata/greeting.tmpl", struct{ Name string }{"Xcode"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Xcode!", string(out))

	out, err = r.RenderFS(testFS, "testdata/list.tmpl", map[string]any{"Items": []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "A;B;", string(out))

	_, err = r.RenderFS(testFS, "testdata/missing.tmpl", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template from fs")
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("id={{ .ID }}"), 0644))

	r := NewRenderer()
	out, err := r.RenderFile(path, map[string]string{"ID": "F00D"})
	require.NoError(t, err)
	assert.Equal(t, "id=F00D", string(out))

	_, err = r.RenderFile(filepath.Join(t.TempDir(), "nope.tmpl"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template file")
}
