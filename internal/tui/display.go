package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andyrewlee/contactform/internal/contact"
)

// Display renders the most recent accepted submission. It holds no state
// beyond the snapshot it was last given.
type Display struct {
	snapshot *contact.Values
}

// NewDisplay creates an empty display.
func NewDisplay() *Display {
	return &Display{}
}

// Set replaces the shown snapshot.
func (d *Display) Set(v contact.Values) {
	d.snapshot = &v
}

// Snapshot returns the shown snapshot, if any.
func (d *Display) Snapshot() (contact.Values, bool) {
	if d.snapshot == nil {
		return contact.Values{}, false
	}
	return *d.snapshot, true
}

type displayRow struct {
	label  string
	marker string
	value  string
}

// rows lists what gets rendered. The message row is omitted entirely when
// no message was submitted.
func (d *Display) rows() []displayRow {
	if d.snapshot == nil {
		return nil
	}
	v := *d.snapshot
	rows := []displayRow{
		{"First Name", MarkerFirstNameDisplay, v.FirstName},
		{"Last Name", MarkerLastNameDisplay, v.LastName},
		{"Email", MarkerEmailDisplay, v.Email},
	}
	if v.HasMessage() {
		rows = append(rows, displayRow{"Message", MarkerMessageDisplay, v.Message})
	}
	return rows
}

// Screen describes the rendered snapshot. Before the first submission it
// is empty.
func (d *Display) Screen() Screen {
	var s Screen
	for _, r := range d.rows() {
		s = append(s, Node{Role: RoleText, Marker: r.marker, Text: r.value})
	}
	return s
}

// View renders the snapshot, or nothing before the first submission.
func (d *Display) View() string {
	rows := d.rows()
	if len(rows) == 0 {
		return ""
	}

	lines := []string{titleStyle.Render("You Submitted:")}
	for _, r := range rows {
		lines = append(lines, headerStyle.Render(r.label+":")+" "+r.value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
