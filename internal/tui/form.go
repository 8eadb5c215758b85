package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zresume/internal/form"
)

type rowKind int

const (
	rowContact rowKind = iota
	rowEntry
	rowAddEntry
	rowSkill
	rowAddSkill
	rowViewDetails
	rowSubmit
)

// row is one focusable line of the form.
type row struct {
	kind    rowKind
	section form.Section
	index   int
	field   form.Field
}

func (r row) isInput() bool {
	return r.kind == rowContact || r.kind == rowEntry || r.kind == rowSkill
}

// formModel edits a resume session. The session is the source of truth;
// inputs are rebuilt from it whenever the row layout changes.
type formModel struct {
	session form.Session
	rows    []row
	inputs  []textinput.Model
	focus   int
	flash   string
}

// submittedMsg reports a submit with the captured contact info.
type submittedMsg struct {
	contact form.Contact
}

// transitionErrMsg reports a rejected transition.
type transitionErrMsg struct {
	err error
}

func newFormModel(s form.Session) formModel {
	m := formModel{session: s}
	m.layout()
	return m
}

// buildRows lays out the form in display order for the given session.
func buildRows(s form.Session) []row {
	var rows []row
	for _, f := range (form.Contact{}).Fields() {
		rows = append(rows, row{kind: rowContact, field: f})
	}

	for _, sec := range []form.Section{form.SectionEducation, form.SectionExperience} {
		fields := form.SectionFields(sec)
		for i := range s.EntryLen(sec) {
			for _, f := range fields {
				rows = append(rows, row{kind: rowEntry, section: sec, index: i, field: f})
			}
		}
		rows = append(rows, row{kind: rowAddEntry, section: sec})
	}

	rows = append(rows,
		row{kind: rowSkill},
		row{kind: rowAddSkill},
		row{kind: rowViewDetails},
		row{kind: rowSubmit},
	)
	return rows
}

// layout rebuilds rows and inputs from the session, keeping focus in range.
func (m *formModel) layout() {
	m.rows = buildRows(m.session)
	m.inputs = make([]textinput.Model, len(m.rows))
	for i, r := range m.rows {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		if r.isInput() {
			ti.SetValue(m.valueFor(r))
		}
		if r.kind == rowSkill {
			ti.Placeholder = "Enter a skill"
		}
		m.inputs[i] = ti
	}

	if m.focus >= len(m.rows) {
		m.focus = len(m.rows) - 1
	}
	m.inputs[m.focus].Focus()
}

func (m formModel) valueFor(r row) string {
	switch r.kind {
	case rowContact:
		v, _ := m.session.Contact().Get(r.field.Name)
		return v
	case rowEntry:
		v, _ := m.session.Entry(r.section, r.index, r.field.Name)
		return v
	case rowSkill:
		return m.session.Skills().Pending()
	}
	return ""
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyCtrlR:
		return m.reveal(), nil
	case tea.KeyDown:
		return m.moveFocus(1), textinput.Blink
	case tea.KeyUp:
		return m.moveFocus(-1), textinput.Blink
	}

	if msg.String() == "shift+tab" {
		return m.moveFocus(-1), textinput.Blink
	}
	if key.Matches(msg, zstyle.KeyTab) {
		return m.moveFocus(1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.activate()
	}

	if !m.rows[m.focus].isInput() {
		return m, nil
	}
	return m.updateInput(msg)
}

// moveFocus shifts focus by delta rows, wrapping at both ends.
func (m formModel) moveFocus(delta int) formModel {
	m.inputs[m.focus].Blur()
	n := len(m.rows)
	m.focus = ((m.focus+delta)%n + n) % n
	m.inputs[m.focus].Focus()
	return m
}

// focusRow moves focus to the first row matching kind and section.
func (m formModel) focusRow(kind rowKind, sec form.Section) formModel {
	for i, r := range m.rows {
		if r.kind == kind && (kind != rowAddEntry || r.section == sec) {
			m.inputs[m.focus].Blur()
			m.focus = i
			m.inputs[m.focus].Focus()
			break
		}
	}
	return m
}

// activate handles enter on the focused row.
func (m formModel) activate() (formModel, tea.Cmd) {
	r := m.rows[m.focus]
	switch r.kind {
	case rowAddEntry:
		return m.appendEntry(r.section)
	case rowSkill, rowAddSkill:
		return m.commitSkill(), nil
	case rowViewDetails:
		return m.reveal(), nil
	case rowSubmit:
		return m.submit()
	}
	return m.moveFocus(1), textinput.Blink
}

func (m formModel) appendEntry(sec form.Section) (formModel, tea.Cmd) {
	s, n, err := m.session.AppendEntry(sec)
	if err != nil {
		return m.fail(err)
	}
	slog.Debug("append entry", "section", sec.String(), "len", n)

	m.session = s
	m.inputs[m.focus].Blur()
	m.layout()
	return m.focusRow(rowAddEntry, sec), nil
}

func (m formModel) commitSkill() formModel {
	s, ok := m.session.CommitSkill()
	if !ok {
		return m
	}
	m.session = s
	m.inputs[m.focus].Blur()
	m.layout()
	return m.focusRow(rowSkill, 0)
}

func (m formModel) submit() (formModel, tea.Cmd) {
	m.session = m.session.Submit()
	m.flash = "submitted"
	contact := m.session.Contact()
	return m, tea.Batch(
		func() tea.Msg { return submittedMsg{contact: contact} },
		clearFlashAfter(),
	)
}

func (m formModel) reveal() formModel {
	m.session = m.session.Reveal()
	return m
}

func (m formModel) fail(err error) (formModel, tea.Cmd) {
	m.flash = err.Error()
	return m, tea.Batch(
		func() tea.Msg { return transitionErrMsg{err: err} },
		clearFlashAfter(),
	)
}

// updateInput forwards msg to the focused input and writes any change back
// into the session.
func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	r := m.rows[m.focus]
	if !r.isInput() {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	value := m.inputs[m.focus].Value()
	if value == before {
		return m, cmd
	}

	var err error
	switch r.kind {
	case rowContact:
		m.session, err = m.session.SetContact(r.field.Name, value)
	case rowEntry:
		m.session, err = m.session.EditEntry(r.section, r.index, r.field.Name, value)
	case rowSkill:
		m.session = m.session.SetSkillInput(value)
	}
	if err != nil {
		m.inputs[m.focus].SetValue(before)
		return m.fail(err)
	}
	return m, cmd
}

// View renders the form and reports the line holding the focused row.
func (m formModel) View() (string, int) {
	var lines []string
	focusLine := 0
	add := func(i int, s string) {
		if i == m.focus {
			focusLine = len(lines)
		}
		lines = append(lines, s)
	}

	lines = append(lines, "", "  "+zstyle.Title.Render("resume"), "")

	prevSection, prevIndex := form.Section(-1), -1
	for i, r := range m.rows {
		switch r.kind {
		case rowContact:
			add(i, m.fieldLine(i, r.field.Label))

		case rowEntry:
			if r.section != prevSection {
				lines = append(lines, "", "  "+zstyle.Subtitle.Render(sectionTitle(r.section)))
				prevSection, prevIndex = r.section, -1
			}
			if r.index != prevIndex {
				lines = append(lines, "  "+zstyle.MutedText.Render(fmt.Sprintf("#%d", r.index+1)))
				prevIndex = r.index
			}
			add(i, m.fieldLine(i, r.field.Label))

		case rowAddEntry:
			add(i, m.buttonLine(i, "add more"))

		case rowSkill:
			lines = append(lines, "", "  "+zstyle.Subtitle.Render("Skills"))
			add(i, m.fieldLine(i, "Skill"))

		case rowAddSkill:
			add(i, m.buttonLine(i, "add skill"))
			for _, tag := range m.session.Skills().Items() {
				lines = append(lines, "      • "+tag)
			}
			lines = append(lines, "")

		case rowViewDetails:
			add(i, m.buttonLine(i, "view details"))

		case rowSubmit:
			add(i, m.buttonLine(i, "submit"))
		}
	}

	lines = append(lines, "")

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		lines = append(lines, "  "+zstyle.StatusOK.Render(m.flash))
	} else {
		lines = append(lines, "")
	}

	if d, ok := m.session.Details(); ok {
		lines = append(lines, detailsLines(d)...)
	}

	s := ""
	for _, l := range lines {
		s += l + "\n"
	}
	return s, focusLine
}

func (m formModel) fieldLine(i int, label string) string {
	cursor := "  "
	if i == m.focus {
		cursor = "> "
	}
	l := zstyle.MutedText.Render(fmt.Sprintf("%-20s", label))
	return fmt.Sprintf("  %s%s %s", cursor, l, m.inputs[i].View())
}

func (m formModel) buttonLine(i int, label string) string {
	text := "[ " + label + " ]"
	if i == m.focus {
		return "  " + zstyle.Highlight.Render("> "+text)
	}
	return "    " + text
}

func sectionTitle(sec form.Section) string {
	switch sec {
	case form.SectionEducation:
		return "Education"
	case form.SectionExperience:
		return "Experience"
	}
	return sec.String()
}
