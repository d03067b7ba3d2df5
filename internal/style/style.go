// Package style renders the shell's status lines with lipgloss.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs prefixed to status lines.
const (
	GlyphSuccess = "✅"
	GlyphError   = "❌"
	GlyphWarning = "⚠️"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	stdoutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	stderrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Success renders "✅ msg".
func Success(msg string) string {
	return render(successStyle, GlyphSuccess+" "+msg)
}

// Error renders "❌ msg".
func Error(msg string) string {
	return render(errorStyle, GlyphError+" "+msg)
}

// Warning renders "⚠️ msg".
func Warning(msg string) string {
	return render(warningStyle, GlyphWarning+" "+msg)
}

// Info renders msg in the informational color.
func Info(msg string) string {
	return render(infoStyle, msg)
}

// Header renders msg in bold.
func Header(msg string) string {
	return render(headerStyle, msg)
}

// Dim renders msg faint.
func Dim(msg string) string {
	return render(dimStyle, msg)
}

// Stdout colors a line of child standard output.
func Stdout(line string) string {
	return render(stdoutStyle, line)
}

// Stderr colors a line of child standard error.
func Stderr(line string) string {
	return render(stderrStyle, line)
}

// render styles each line on its own so lipgloss does not pad a block to its
// widest line.
func render(s lipgloss.Style, text string) string {
	if !strings.Contains(text, "\n") {
		return s.Render(text)
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = s.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
