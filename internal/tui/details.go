package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zresume/internal/form"
)

// detailRow is one labelled cell of the details table. Entry rows carry
// several sub-lines.
type detailRow struct {
	label string
	lines []string
}

// detailRows flattens details into table rows in display order.
func detailRows(d form.Details) []detailRow {
	var rows []detailRow
	for _, f := range d.Contact.Fields() {
		v, _ := d.Contact.Get(f.Name)
		rows = append(rows, detailRow{label: f.Label, lines: []string{v}})
	}

	rows = append(rows,
		detailRow{label: "Education", lines: entryLines(d.Education)},
		detailRow{label: "Experience", lines: entryLines(d.Experience)},
	)

	skills := make([]string, len(d.Skills))
	for i, s := range d.Skills {
		skills[i] = "• " + s
	}
	rows = append(rows, detailRow{label: "Skills", lines: skills})
	return rows
}

func entryLines[T form.Record[T]](entries []T) []string {
	var lines []string
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		for _, f := range e.Fields() {
			v, _ := e.Get(f.Name)
			lines = append(lines, f.Label+": "+v)
		}
	}
	return lines
}

// detailsLines renders the revealed details table for the terminal.
func detailsLines(d form.Details) []string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	lines := []string{"", "  " + accentStyle.Render("View Details")}
	if !d.Submitted {
		lines = append(lines, "  "+zstyle.StatusWarn.Render("not submitted yet"))
	}
	lines = append(lines, "")

	for _, r := range detailRows(d) {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", r.label+":"))
		if len(r.lines) == 0 {
			lines = append(lines, "    "+label)
			continue
		}
		for i, l := range r.lines {
			if i == 0 {
				lines = append(lines, "    "+label+" "+l)
				continue
			}
			lines = append(lines, "    "+strings.Repeat(" ", 12)+" "+l)
		}
	}
	return lines
}

// detailsText renders details as plain text, one cell per line.
func detailsText(d form.Details) string {
	var b strings.Builder
	for _, r := range detailRows(d) {
		fmt.Fprintf(&b, "%s:\n", r.label)
		for _, l := range r.lines {
			if l == "" {
				b.WriteString("\n")
				continue
			}
			fmt.Fprintf(&b, "  %s\n", l)
		}
	}
	return b.String()
}

