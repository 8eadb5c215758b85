// Package tui implements the root Bubble Tea model for zresume.
package tui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zresume/internal/form"
)

var accent = zstyle.ZburnAccent

// header, separator and footer lines around the content
const chromeLines = 6

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// Model is the root TUI model.
type Model struct {
	version string
	form    formModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model around a fresh session.
func New(version string) Model {
	return NewWithSession(version, form.NewSession())
}

// NewWithSession creates the root TUI model editing s.
func NewWithSession(version string, s form.Session) Model {
	return Model{
		version: version,
		form:    newFormModel(s),
	}
}

// Session returns the session being edited.
func (m Model) Session() form.Session {
	return m.form.session
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlY {
			return m.copyDetails()
		}

	case submittedMsg:
		slog.Info("form submitted",
			"name", msg.contact.Name,
			"email", msg.contact.Email,
			"address", msg.contact.Address,
			"phone", msg.contact.Phone,
		)
		return m, nil

	case transitionErrMsg:
		slog.Warn("transition rejected", "err", msg.err)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) copyDetails() (tea.Model, tea.Cmd) {
	d, ok := m.form.session.Details()
	if !ok {
		m.form.flash = "nothing to copy: view details first"
		return m, clearFlashAfter()
	}

	if err := copyToClipboard(detailsText(d)); err != nil {
		m.form.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.form.flash = "copied details!"
	return m, clearFlashAfter()
}

func (m Model) View() string {
	content, focusLine := m.form.View()
	content = clip(content, focusLine, m.height-chromeLines)

	header := zstyle.RenderHeader("zresume", viewTitle(m.form.session), accent) +
		" " + zstyle.MutedText.Render(m.version)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.form.session))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// clip keeps at most limit lines of content, scrolled so the focus line stays
// visible. A non-positive limit disables clipping.
func clip(content string, focusLine, limit int) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if limit <= 0 || len(lines) <= limit {
		return content
	}

	start := focusLine - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > len(lines) {
		start = len(lines) - limit
	}
	return strings.Join(lines[start:start+limit], "\n") + "\n"
}

// viewTitle returns the header title for the session state.
func viewTitle(s form.Session) string {
	if s.Revealed() {
		return "Resume Details"
	}
	return "Resume Builder"
}

// helpFor returns keybinding pairs for the footer.
func helpFor(s form.Session) []zstyle.HelpPair {
	help := []zstyle.HelpPair{
		{Key: "tab/↓", Desc: "next"},
		{Key: "shift+tab/↑", Desc: "prev"},
		{Key: "enter", Desc: "select"},
		{Key: "ctrl+s", Desc: "submit"},
	}
	if s.Revealed() {
		help = append(help, zstyle.HelpPair{Key: "ctrl+y", Desc: "copy details"})
	} else {
		help = append(help, zstyle.HelpPair{Key: "ctrl+r", Desc: "view details"})
	}
	return append(help, zstyle.HelpPair{Key: "ctrl+c", Desc: "quit"})
}
