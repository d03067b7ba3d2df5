// Package spinner shows a one-line progress indicator while a slow step,
// such as a push, runs. The line is cleared when the step finishes.
package spinner

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Spinner displays a spinner next to a title and an optional status line.
// On a non-terminal output it displays nothing.
type Spinner struct {
	program *tea.Program
	output  io.Writer
	title   string
	enabled bool
	wg      sync.WaitGroup
}

// New creates a Spinner that writes to output (os.Stderr when nil).
func New(output io.Writer, title string) *Spinner {
	if output == nil {
		output = os.Stderr
	}
	return &Spinner{
		output:  output,
		title:   title,
		enabled: isTerminal(output),
	}
}

// Run shows a spinner with title while fn runs and returns fn's error.
func Run(output io.Writer, title string, fn func() error) error {
	s := New(output, title)
	s.Start()
	defer s.Stop()
	return fn()
}

// Start begins the display in the background.
func (s *Spinner) Start() {
	if !s.enabled || s.program != nil {
		return
	}

	s.program = tea.NewProgram(newModel(s.title, terminalWidth(s.output)),
		tea.WithOutput(s.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, _ = s.program.Run()
	}()
}

// Status replaces the line shown after the title.
func (s *Spinner) Status(line string) {
	if s.program != nil {
		s.program.Send(lineMsg(line))
	}
}

// Stop clears the spinner line and waits for the display to exit.
func (s *Spinner) Stop() {
	if s.program == nil {
		return
	}
	s.program.Quit()
	s.wg.Wait()
	s.program = nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// model is the bubbletea model for the spinner.
type model struct {
	spinner    spinner.Model
	title      string
	statusLine string
	width      int
	quitting   bool
}

// lineMsg updates the status line.
type lineMsg string

func newModel(title string, width int) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		spinner: s,
		title:   title,
		width:   width,
	}
}

// Init implements tea.Model.
//
//nolint:gocritic // hugeParam: tea.Model interface requires value receiver
func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
//
//nolint:gocritic // hugeParam: tea.Model interface requires value receiver
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case lineMsg:
		m.statusLine = string(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.QuitMsg:
		m.quitting = true
	}

	return m, nil
}

// View implements tea.Model.
//
//nolint:gocritic // hugeParam: tea.Model interface requires value receiver
func (m model) View() string {
	if m.quitting {
		return ""
	}

	text := m.title
	if m.statusLine != "" {
		text += " " + m.statusLine
	}

	// The spinner glyph takes two columns plus a space.
	maxLineWidth := max(m.width-3, 10)
	return m.spinner.View() + " " + truncate(text, maxLineWidth)
}

// truncate shortens s to maxWidth runes, ending with "..." when cut.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxWidth {
		return s
	}
	return string(r[:maxWidth-3]) + "..."
}
