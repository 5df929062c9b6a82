package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects output into a buffer for the duration of f.
func capture(t *testing.T, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	defer SetWriter(prev)
	f()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		print  func(string)
		marker string
	}{
		{"success", Success, "✨"},
		{"error", Error, "❌"},
		{"info", Info, "ℹ️"},
		{"step", Step, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, func() { tt.print("hello icons") })
			assert.Contains(t, out, tt.marker)
			assert.Contains(t, out, "hello icons")
		})
	}
}

func TestVerbose(t *testing.T) {
	out := capture(t, func() { Verbose("rendering 16x16") })
	assert.Empty(t, out, "verbose output should be hidden by default")

	SetVerbose(true)
	defer SetVerbose(false)

	out = capture(t, func() { Verbose("rendering 16x16") })
	assert.Contains(t, out, "🔍")
	assert.Contains(t, out, "rendering 16x16")
}

func TestSetWriter_NilRestoresStdout(t *testing.T) {
	var buf bytes.Buffer
	prev := SetWriter(&buf)
	defer SetWriter(prev)

	SetWriter(nil)
	assert.Equal(t, os.Stdout, Writer())
}
