package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

// DiffOptions configures how diffs are generated and displayed.
// Zero values select the defaults.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines around each change.
	// Default: 3
	ContextLines int

	// Width truncates long lines. Default: terminal width, or 120.
	Width int

	// Plain disables colour.
	Plain bool
}

// DiffGenerator renders unified diffs between an existing file and its
// regenerated content.
type DiffGenerator struct {
	opts DiffOptions
}

// NewDiffGenerator creates a diff generator with default options.
func NewDiffGenerator() *DiffGenerator {
	return NewDiffGeneratorWithOptions(DiffOptions{})
}

// NewDiffGeneratorWithOptions creates a diff generator, filling in defaults.
func NewDiffGeneratorWithOptions(opts DiffOptions) *DiffGenerator {
	if opts.ContextLines <= 0 {
		opts.ContextLines = 3
	}
	if opts.Width <= 0 {
		opts.Width = terminalWidth()
	}
	return &DiffGenerator{opts: opts}
}

// Generate returns a unified diff from existing to newer, or "" when the
// two are identical. Binary content (PNG icons) is summarised by size.
func (dg *DiffGenerator) Generate(path string, existing, newer []byte) string {
	if bytes.Equal(existing, newer) {
		return ""
	}
	if isBinary(existing) || isBinary(newer) {
		return fmt.Sprintf("Binary files differ: %s (%s → %s)\n",
			path, formatFileSize(int64(len(existing))), formatFileSize(int64(len(newer))))
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(newer)),
		FromFile: path + " (existing)",
		ToFile:   path + " (generated)",
		Context:  dg.opts.ContextLines,
	})
	if err != nil {
		return fmt.Sprintf("cannot diff %s: %v\n", path, err)
	}

	var buf strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		body := truncateLine(strings.TrimRight(line, "\n"), dg.opts.Width)
		buf.WriteString(dg.style(body))
		buf.WriteByte('\n')
	}
	return buf.String()
}

func (dg *DiffGenerator) style(line string) string {
	if dg.opts.Plain {
		return line
	}
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return headerStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return hunkStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return addedStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return removedStyle.Render(line)
	}
	return line
}

// isBinary reports whether data looks like binary content (NUL byte or
// invalid UTF-8 in the first 8KB).
func isBinary(data []byte) bool {
	head := data
	if len(head) > 8000 {
		head = head[:8000]
	}
	return bytes.IndexByte(head, 0) >= 0 || !utf8.Valid(head)
}

func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 || utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxWidth-1]) + "…"
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 120
}

// formatFileSize formats a byte count for people.
func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
