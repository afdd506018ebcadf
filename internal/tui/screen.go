package tui

import (
	"regexp"
	"strings"
)

// Role is the semantic role of a rendered element.
type Role string

const (
	RoleHeading Role = "heading"
	RoleTextbox Role = "textbox"
	RoleButton  Role = "button"
	RoleAlert   Role = "alert"
	RoleText    Role = "text"
)

// Markers addressing elements independent of their text.
const (
	MarkerError            = "error"
	MarkerFirstNameDisplay = "firstnameDisplay"
	MarkerLastNameDisplay  = "lastnameDisplay"
	MarkerEmailDisplay     = "emailDisplay"
	MarkerMessageDisplay   = "messageDisplay"
)

// Node is one addressable element of a render. Every View has a matching
// Screen describing the same elements, so callers can find inputs by label,
// the submit control by role and messages by marker without parsing
// terminal output.
type Node struct {
	Role    Role
	ID      string // focus target for textboxes and buttons
	Label   string // accessible label of a textbox
	Marker  string
	Text    string // visible text, or the current value of a textbox
	Focused bool
}

// Screen is the flattened list of nodes of one render, in display order.
type Screen []Node

// ByText returns the first node whose text is exactly s.
func (s Screen) ByText(text string) (Node, bool) {
	for _, n := range s {
		if n.Role != RoleTextbox && n.Text == text {
			return n, true
		}
	}
	return Node{}, false
}

// AllByText returns every non-input node whose text matches re.
func (s Screen) AllByText(re *regexp.Regexp) []Node {
	var out []Node
	for _, n := range s {
		if n.Role != RoleTextbox && re.MatchString(n.Text) {
			out = append(out, n)
		}
	}
	return out
}

// ByLabel returns the first textbox whose label matches pattern,
// case-insensitively.
func (s Screen) ByLabel(pattern string) (Node, bool) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Node{}, false
	}
	for _, n := range s {
		if n.Role == RoleTextbox && re.MatchString(n.Label) {
			return n, true
		}
	}
	return Node{}, false
}

// ByRole returns every node with the given role.
func (s Screen) ByRole(role Role) []Node {
	var out []Node
	for _, n := range s {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// AllByMarker returns every node carrying marker.
func (s Screen) AllByMarker(marker string) []Node {
	var out []Node
	for _, n := range s {
		if n.Marker == marker {
			out = append(out, n)
		}
	}
	return out
}

// ByMarker returns the first node carrying marker.
func (s Screen) ByMarker(marker string) (Node, bool) {
	for _, n := range s {
		if n.Marker == marker {
			return n, true
		}
	}
	return Node{}, false
}

// String renders the screen as plain text, one node per line. Used for
// test failure output and the text export.
func (s Screen) String() string {
	var sb strings.Builder
	for _, n := range s {
		sb.WriteString(string(n.Role))
		if n.Label != "" {
			sb.WriteString(" [" + n.Label + "]")
		}
		if n.Marker != "" {
			sb.WriteString(" #" + n.Marker)
		}
		if n.Text != "" {
			sb.WriteString(" " + n.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
