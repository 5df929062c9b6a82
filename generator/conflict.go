package generator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ConflictResolution represents what to do with an existing file
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

func (c ConflictResolution) String() string {
	switch c {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	case ShowDiff:
		return "diff"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// ConflictStrategy decides what happens to a file that already exists with
// different content.
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

// Resolver applies a ConflictStrategy. A ShowDiff answer prints the diff
// and asks again, so callers only ever see Skip, Overwrite or Cancel.
type Resolver struct {
	strategy ConflictStrategy
	diffGen  *DiffGenerator
	out      io.Writer
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewResolver creates a conflict resolver from the --force, --skip and
// --diff flags. Without flags it prompts on a terminal and overwrites
// otherwise, which is what a scripted regeneration expects.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	if force && (skip || diff) {
		return nil, fmt.Errorf("--force cannot be combined with --skip or --diff")
	}
	if skip && diff {
		return nil, fmt.Errorf("--skip cannot be combined with --diff")
	}

	dg := NewDiffGenerator()
	return &Resolver{
		strategy: selectStrategy(force, skip, diff, dg),
		diffGen:  dg,
		out:      os.Stdout,
	}, nil
}

// NewResolverWithStrategy wraps an explicit strategy.
func NewResolverWithStrategy(s ConflictStrategy) *Resolver {
	return &Resolver{strategy: s, diffGen: NewDiffGenerator(), out: os.Stdout}
}

// WithOutput sets where diffs are printed and returns the resolver.
func (r *Resolver) WithOutput(w io.Writer) *Resolver {
	if w != nil {
		r.out = w
	}
	return r
}

// ResolveConflict decides what to do with a file that already exists.
func (r *Resolver) ResolveConflict(path string, existing, newer []byte) (ConflictResolution, error) {
	for {
		res, err := r.strategy.Resolve(path, existing, newer)
		if err != nil || res != ShowDiff {
			return res, err
		}
		fmt.Fprint(r.out, r.diffGen.Generate(path, existing, newer))
	}
}

func selectStrategy(force, skip, diff bool, dg *DiffGenerator) ConflictStrategy {
	switch {
	case force:
		return &ForceStrategy{}
	case skip:
		return &SkipStrategy{}
	case diff:
		return &DiffStrategy{diffGen: dg}
	case !stdinIsTerminal():
		return &ForceStrategy{}
	default:
		return &InteractiveStrategy{}
	}
}

// ForceStrategy always overwrites.
type ForceStrategy struct{}

func (s *ForceStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always keeps the existing file.
type SkipStrategy struct{}

func (s *SkipStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Skip, nil
}

// DiffStrategy shows the diff first, then asks.
type DiffStrategy struct {
	diffGen *DiffGenerator
}

func (s *DiffStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	diff := s.diffGen.Generate(path, existing, newer)

	if strings.Count(diff, "\n") > 20 {
		p := tea.NewProgram(newDiffViewerModel(path, diff), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show diff: %w", err)
		}
		if final.(diffViewerModel).cancelled {
			return Cancel, nil
		}
	} else {
		fmt.Print(diff)
	}

	return (&InteractiveStrategy{}).Resolve(path, existing, newer)
}

// InteractiveStrategy shows a keyboard-driven menu.
type InteractiveStrategy struct{}

func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	info, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return Cancel, fmt.Errorf("failed to stat file: %w", err)
	}

	final, err := tea.NewProgram(newConflictMenuModel(path, info)).Run()
	if err != nil {
		return Cancel, fmt.Errorf("failed to show menu: %w", err)
	}

	result := final.(conflictMenuModel)
	if result.selected == nil {
		return Cancel, nil
	}
	return *result.selected, nil
}

type conflictMenuModel struct {
	path     string
	fileInfo os.FileInfo
	choices  []menuChoice
	cursor   int
	selected *ConflictResolution
}

type menuChoice struct {
	label      string
	resolution ConflictResolution
}

func newConflictMenuModel(path string, info os.FileInfo) conflictMenuModel {
	return conflictMenuModel{
		path:     path,
		fileInfo: info,
		choices: []menuChoice{
			{"Show diff and decide", ShowDiff},
			{"Skip (keep existing file)", Skip},
			{"Overwrite (replace with generated file)", Overwrite},
			{"Cancel generation", Cancel},
		},
	}
}

func (m conflictMenuModel) Init() tea.Cmd {
	return nil
}

func (m conflictMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		res := m.choices[m.cursor].resolution
		m.selected = &res
		return m, tea.Quit
	}
	return m, nil
}

func (m conflictMenuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  File already exists: ") + titleStyle.Render(m.path) + "\n")
	if m.fileInfo != nil {
		b.WriteString(mutedStyle.Render("    Last modified: ") + formatRelativeTime(m.fileInfo.ModTime()) + "\n")
		b.WriteString(mutedStyle.Render("    Size: ") + formatFileSize(m.fileInfo.Size()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, c := range m.choices {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+c.label) + "\n")
		} else {
			b.WriteString("      " + c.label + "\n")
		}
	}
	return b.String()
}

type diffViewerModel struct {
	path      string
	diff      string
	viewport  viewport.Model
	ready     bool
	cancelled bool
}

func newDiffViewerModel(path, diff string) diffViewerModel {
	return diffViewerModel{path: path, diff: diff}
}

func (m diffViewerModel) Init() tea.Cmd {
	return nil
}

func (m diffViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		const chrome = 5 // header + footer lines
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-chrome)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffViewerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := fmt.Sprintf("─ Diff: %s ", m.path)
	footer := " [↑/↓] Scroll    [q] Back to menu    [ctrl+c] Cancel "

	var b strings.Builder
	b.WriteString(borderStyle.Render("┌"+title+strings.Repeat("─", max(0, m.viewport.Width-len(title)+2))) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(borderStyle.Render("└"+strings.Repeat("─", max(0, m.viewport.Width-len(footer)+2))+footer) + "\n")
	return b.String()
}

// formatRelativeTime formats a time as relative (e.g., "2 hours ago")
func formatRelativeTime(t time.Time) string {
	d := time.Since(t)

	plural := func(n int, unit string) string {
		if n == 1 {
			return "1 " + unit + " ago"
		}
		return fmt.Sprintf("%d %ss ago", n, unit)
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24/7), "week")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/24/30), "month")
	default:
		return plural(int(d.Hours()/24/365), "year")
	}
}
