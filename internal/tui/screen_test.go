package tui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleScreen = Screen{
	{Role: RoleHeading, Text: "Contact Form"},
	{Role: RoleTextbox, ID: "firstName", Label: "First Name*", Text: "Michael"},
	{Role: RoleTextbox, ID: "lastName", Label: "Last Name*"},
	{Role: RoleAlert, Marker: MarkerError, Text: "lastName is a required field"},
	{Role: RoleButton, ID: SubmitID, Text: "Submit"},
	{Role: RoleText, Marker: MarkerFirstNameDisplay, Text: "Michael"},
}

func TestScreenByLabel(t *testing.T) {
	n, ok := sampleScreen.ByLabel("first name*")
	require.True(t, ok)
	require.Equal(t, "firstName", n.ID)

	n, ok = sampleScreen.ByLabel("LAST NAME")
	require.True(t, ok)
	require.Equal(t, "lastName", n.ID)

	_, ok = sampleScreen.ByLabel("email")
	require.False(t, ok)

	_, ok = sampleScreen.ByLabel("(")
	require.False(t, ok, "bad patterns match nothing")
}

func TestScreenByTextSkipsInputs(t *testing.T) {
	n, ok := sampleScreen.ByText("Michael")
	require.True(t, ok)
	require.Equal(t, RoleText, n.Role, "textbox values are not text nodes")
}

func TestScreenAllByText(t *testing.T) {
	got := sampleScreen.AllByText(regexp.MustCompile("(?i)required"))
	require.Len(t, got, 1)
	require.Equal(t, RoleAlert, got[0].Role)
}

func TestScreenByRoleAndMarker(t *testing.T) {
	require.Len(t, sampleScreen.ByRole(RoleButton), 1)
	require.Len(t, sampleScreen.ByRole(RoleTextbox), 2)
	require.Len(t, sampleScreen.AllByMarker(MarkerError), 1)

	_, ok := sampleScreen.ByMarker(MarkerMessageDisplay)
	require.False(t, ok)
}

func TestScreenString(t *testing.T) {
	s := Screen{
		{Role: RoleTextbox, Label: "Email*", Text: "a@b.co"},
		{Role: RoleAlert, Marker: MarkerError, Text: "bad"},
	}
	require.Equal(t, "textbox [Email*] a@b.co\nalert #error bad\n", s.String())
}
