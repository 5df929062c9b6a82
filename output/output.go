package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mu          sync.Mutex
	writer      io.Writer = os.Stdout
	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// The root command calls this when --verbose is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// SetWriter redirects all output to w and returns the previous writer.
// A nil w restores stdout.
func SetWriter(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := writer
	if w == nil {
		w = os.Stdout
	}
	writer = w
	return prev
}

// Writer returns the writer output currently goes to.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return writer
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Created 13 icons")
func Success(msg string) {
	emit(successStyle.Render("✨ " + msg))
}

// Error prints a failure in red.
func Error(msg string) {
	emit(errorStyle.Render("❌ " + msg))
}

// Info prints a status update in cyan.
func Info(msg string) {
	emit(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented gray sub-item, typically a next step.
//
// Example:
//
//	output.Step("open BitcoinPriceStatusBar.xcodeproj")
func Step(msg string) {
	emit(stepStyle.Render("   " + msg))
}

// Verbose prints a debug line only when verbose mode is enabled.
func Verbose(msg string) {
	mu.Lock()
	on := verboseMode
	mu.Unlock()
	if on {
		emit(stepStyle.Render("🔍 " + msg))
	}
}

func emit(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(writer, s)
}
