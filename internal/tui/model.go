package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/andyrewlee/contactform/internal/contact"
)

// FocusMsg moves focus to the element with the given id, the same way a
// click on it would.
type FocusMsg struct {
	ID string
}

// Model is the main TUI model: the contact form with the display of the
// last accepted submission underneath.
type Model struct {
	width  int
	height int

	keys        KeyMap
	form        *ContactForm
	display     *Display
	help        help.Model
	helpOverlay *HelpOverlay
	showHelp    bool

	logger      *log.Logger
	submissions int

	// Ready indicates the terminal size is known
	ready bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithForm replaces the form, e.g. to pass FormOptions.
func WithForm(f *ContactForm) Option {
	return func(m *Model) {
		if f != nil {
			m.form = f
		}
	}
}

// New creates a new Model
func New(opts ...Option) Model {
	keys := DefaultKeyMap()
	m := Model{
		keys:        keys,
		form:        NewContactForm(WithKeyMap(keys)),
		display:     NewDisplay(),
		help:        help.New(),
		helpOverlay: NewHelpOverlay(keys),
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("quitting", "submissions", m.submissions)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		}
		cmd := m.form.Update(msg)
		m.takeSubmission()
		return m, cmd

	case FocusMsg:
		return m, m.form.Focus(msg.ID)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil
	}

	return m, m.form.Update(msg)
}

// takeSubmission moves an accepted submission from the form to the display.
func (m *Model) takeSubmission() {
	values, ok := m.form.Submission()
	if !ok {
		return
	}
	m.submissions++
	m.display.Set(values)
	m.logger.Info("submission accepted",
		"count", m.submissions,
		"has_message", values.HasMessage(),
	)
}

// Submitted returns the most recent accepted submission.
func (m Model) Submitted() (contact.Values, bool) {
	return m.display.Snapshot()
}

// Submissions returns how many submissions were accepted.
func (m Model) Submissions() int {
	return m.submissions
}

// Form returns the contact form component.
func (m Model) Form() *ContactForm {
	return m.form
}

// Screen describes the current render: form nodes followed by the display.
// The help overlay hides the form, so its screen is empty.
func (m Model) Screen() Screen {
	if m.showHelp {
		return nil
	}
	s := m.form.Screen()
	return append(s, m.display.Screen()...)
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		return m.helpOverlay.Render(m.width, m.height)
	}

	return m.renderLayout()
}

// renderLayout stacks the form, the display (once something was submitted)
// and the footer.
func (m Model) renderLayout() string {
	panels := []string{formPanelStyle.Render(m.form.View(m.width))}

	if d := m.display.View(); d != "" {
		panels = append(panels, displayPanelStyle.Render(d))
	}

	panels = append(panels, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// renderFooter renders the footer
func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}
