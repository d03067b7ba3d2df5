package shell

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// visibleDirs is how many trailing path components the prompt tree shows.
const visibleDirs = 3

var (
	promptBold    = lipgloss.NewStyle().Bold(true)
	promptDim     = lipgloss.NewStyle().Faint(true)
	promptCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	promptYellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	promptGreen   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	promptMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	promptRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type promptInfo struct {
	home string
	user string
	host string
	os   string
}

func currentPromptInfo(home string) promptInfo {
	info := promptInfo{home: home, user: os.Getenv("USER"), host: "localhost", os: osLabel(runtime.GOOS)}
	if info.user == "" {
		if u, err := user.Current(); err == nil {
			info.user = u.Username
		}
	}
	if h, err := os.Hostname(); err == nil && h != "" {
		info.host = h
	}
	return info
}

func osLabel(goos string) string {
	switch goos {
	case "windows":
		return "win"
	case "darwin":
		return "mac"
	case "linux":
		return "linux"
	default:
		return "unix"
	}
}

func (s *Session) renderPrompt(ctx context.Context) string {
	var branch string
	if s.branch != nil {
		branch = s.branch(ctx, s.dir)
	}
	return renderPrompt(s.prompt, s.dir, branch)
}

// renderPrompt draws the working directory as a tree ending in the input
// line:
//
//	→
//	└[linux]
//	    └home
//	        └user
//	            └[user@host] git:(main)$
func renderPrompt(info promptInfo, dir, branch string) string {
	display := dir
	if info.home != "" && (dir == info.home || strings.HasPrefix(dir, info.home+string(filepath.Separator))) {
		display = "~" + strings.TrimPrefix(dir, info.home)
	}

	var components []string
	for _, c := range strings.Split(display, string(filepath.Separator)) {
		if c != "" && c != "~" {
			components = append(components, c)
		}
	}

	var b strings.Builder
	if len(components) > visibleDirs {
		b.WriteString(promptBold.Render("→ "))
		b.WriteString(promptDim.Render(display))
		b.WriteString("\n")
		components = components[len(components)-visibleDirs:]
	} else {
		b.WriteString("→\n")
	}

	b.WriteString(promptDim.Render("└["))
	b.WriteString(promptCyan.Render(info.os))
	b.WriteString(promptDim.Render("]"))
	b.WriteString("\n")

	for i, c := range components {
		b.WriteString(strings.Repeat("    ", i+1))
		b.WriteString(promptDim.Render("└"))
		b.WriteString(promptYellow.Render(c))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("    ", len(components)+1))
	b.WriteString(promptBold.Render("└["))
	b.WriteString(promptCyan.Render(info.user))
	b.WriteString(promptBold.Render("@"))
	b.WriteString(promptGreen.Render(info.host))
	b.WriteString(promptBold.Render("]"))
	if branch != "" {
		b.WriteString(" ")
		b.WriteString(promptMagenta.Render("git:("))
		b.WriteString(promptRed.Render(branch))
		b.WriteString(promptMagenta.Render(")"))
	}
	b.WriteString(promptBold.Render("$ "))
	return b.String()
}
