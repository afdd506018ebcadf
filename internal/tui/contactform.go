// Package tui provides the terminal UI of the contact form.
//
// This file implements ContactForm, the interactive form that collects a
// first name, last name, email and optional message, validates them as the
// user types and hands a snapshot onward when a valid form is submitted.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andyrewlee/contactform/internal/contact"
)

// FormTitle is the header rendered at the top of the form.
const FormTitle = "Contact Form"

// SubmitID is the focus target of the submit button.
const SubmitID = "submit"

// The focus ring is the four fields followed by the submit button.
const (
	focusSubmit = contact.FieldCount
	focusCount  = contact.FieldCount + 1
)

// ContactForm manages the state and rendering of the contact form.
//
// Errors are computed for every field on each change but only shown for
// fields the user has touched, either by typing into them or by submitting.
// Submitting with any required field invalid marks every required field
// touched and moves focus to the first invalid one.
//
// Example usage:
//
//	form := NewContactForm()
//	// In Update method:
//	cmd := form.Update(msg)
//	if values, ok := form.Submission(); ok {
//	    // values is the snapshot of a valid submit
//	}
//	// In View method:
//	return form.View(width)
type ContactForm struct {
	keys      KeyMap
	validator *contact.Validator

	names   [3]textinput.Model // first name, last name, email
	message textarea.Model

	focusIndex int
	touched    [contact.FieldCount]bool
	errs       contact.Errors

	clearOnSubmit bool
	pending       *contact.Values
}

// FormOption configures a ContactForm.
type FormOption func(*ContactForm)

// WithClearOnSubmit resets every field after an accepted submission.
func WithClearOnSubmit(clear bool) FormOption {
	return func(f *ContactForm) {
		f.clearOnSubmit = clear
	}
}

// WithValidator replaces the default rule set.
func WithValidator(v *contact.Validator) FormOption {
	return func(f *ContactForm) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(km KeyMap) FormOption {
	return func(f *ContactForm) {
		f.keys = km
	}
}

var defaultValidator = contact.MustNewValidator()

// NewContactForm creates a form with every field empty and the first name
// focused.
func NewContactForm(opts ...FormOption) *ContactForm {
	f := &ContactForm{
		keys:      DefaultKeyMap(),
		validator: defaultValidator,
	}

	placeholders := [3]string{"Edd", "Burke", "bluebill1049@hotmail.com"}
	limits := [3]int{64, 64, 254}
	for i := range f.names {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = limits[i]
		input.Width = 40
		input.Prompt = ""
		f.names[i] = input
	}

	message := textarea.New()
	message.Placeholder = "Optional message..."
	message.CharLimit = 1000
	message.SetWidth(40)
	message.SetHeight(3)
	message.ShowLineNumbers = false
	message.Prompt = ""
	message.Blur()
	f.message = message

	for _, opt := range opts {
		opt(f)
	}

	f.names[contact.FieldFirstName].Focus()
	f.revalidate()

	return f
}

// Values returns the current content of every field.
func (f *ContactForm) Values() contact.Values {
	var v contact.Values
	for _, fld := range contact.Fields {
		v = v.Set(fld, f.value(fld))
	}
	return v
}

// IsValid reports whether every required field currently passes, whether
// or not its error is shown.
func (f *ContactForm) IsValid() bool {
	return len(f.errs) == 0
}

// Errors returns the messages currently shown, one per touched invalid field.
func (f *ContactForm) Errors() contact.Errors {
	visible := contact.Errors{}
	for _, fld := range contact.Fields {
		if f.touched[fld] && f.errs.Has(fld) {
			visible[fld] = f.errs.Get(fld)
		}
	}
	return visible
}

// Touched reports whether the field's error may be shown.
func (f *ContactForm) Touched(fld contact.Field) bool {
	return f.touched[fld]
}

// FocusedID returns the id of the focused element: a field name or SubmitID.
func (f *ContactForm) FocusedID() string {
	if f.focusIndex == focusSubmit {
		return SubmitID
	}
	return contact.Field(f.focusIndex).String()
}

// Submission returns the snapshot of the last accepted submit, once.
func (f *ContactForm) Submission() (contact.Values, bool) {
	if f.pending == nil {
		return contact.Values{}, false
	}
	v := *f.pending
	f.pending = nil
	return v, true
}

// Submit validates every required field. When all pass it records a
// snapshot for Submission and returns true. Otherwise every error becomes
// visible and focus moves to the first invalid field.
func (f *ContactForm) Submit() bool {
	for _, fld := range contact.Fields {
		if fld.Required() {
			f.touched[fld] = true
		}
	}
	f.revalidate()

	if first, ok := f.errs.First(); ok {
		f.focusIndexTo(int(first))
		return false
	}

	snapshot := f.Values()
	f.pending = &snapshot

	if f.clearOnSubmit {
		f.Reset()
	}
	return true
}

// Reset empties every field and forgets which ones were touched.
func (f *ContactForm) Reset() {
	for _, fld := range contact.Fields {
		f.setValue(fld, "")
	}
	f.touched = [contact.FieldCount]bool{}
	f.revalidate()
	f.focusIndexTo(int(contact.FieldFirstName))
}

// SetValue replaces a field's content as if the user had typed it.
func (f *ContactForm) SetValue(fld contact.Field, s string) {
	if f.value(fld) == s {
		return
	}
	f.setValue(fld, s)
	f.touched[fld] = true
	f.revalidate()
}

// Focus moves focus to the element with the given id, the keyboard
// equivalent of clicking it. Unknown ids are ignored.
func (f *ContactForm) Focus(id string) tea.Cmd {
	if id == SubmitID {
		return f.focusIndexTo(focusSubmit)
	}
	fld, ok := contact.ParseField(id)
	if !ok {
		return nil
	}
	return f.focusIndexTo(int(fld))
}

// Update handles input events for the form.
//
//   - Tab/Down, Shift+Tab/Up: move focus, wrapping around
//   - Enter: press the submit button when it is focused, otherwise move on
//   - Ctrl+S: submit from any field
//
// Anything else goes to the focused input. If its value changed, the field
// becomes touched and the form is re-validated.
func (f *ContactForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blinks and the like belong to the focused widget.
		if f.focusIndex == focusSubmit {
			return nil
		}
		return f.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Submit):
		f.Submit()
		return nil

	case key.Matches(keyMsg, f.keys.Enter):
		if f.focusIndex == focusSubmit {
			f.Submit()
			return nil
		}
		return f.nextInput()

	case key.Matches(keyMsg, f.keys.Next):
		return f.nextInput()

	case key.Matches(keyMsg, f.keys.Prev):
		return f.prevInput()
	}

	if f.focusIndex == focusSubmit {
		return nil
	}

	fld := contact.Field(f.focusIndex)
	before := f.value(fld)
	cmd := f.updateFocused(keyMsg)
	if f.value(fld) != before {
		f.touched[fld] = true
		f.revalidate()
	}
	return cmd
}

func (f *ContactForm) revalidate() {
	f.errs = f.validator.Validate(f.Values())
}

func (f *ContactForm) value(fld contact.Field) string {
	if fld == contact.FieldMessage {
		return f.message.Value()
	}
	return f.names[fld].Value()
}

func (f *ContactForm) setValue(fld contact.Field, s string) {
	if fld == contact.FieldMessage {
		f.message.SetValue(s)
		return
	}
	f.names[fld].SetValue(s)
}

func (f *ContactForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if contact.Field(f.focusIndex) == contact.FieldMessage {
		f.message, cmd = f.message.Update(msg)
		return cmd
	}
	f.names[f.focusIndex], cmd = f.names[f.focusIndex].Update(msg)
	return cmd
}

func (f *ContactForm) nextInput() tea.Cmd {
	return f.focusIndexTo((f.focusIndex + 1) % focusCount)
}

func (f *ContactForm) prevInput() tea.Cmd {
	return f.focusIndexTo((f.focusIndex - 1 + focusCount) % focusCount)
}

func (f *ContactForm) focusIndexTo(i int) tea.Cmd {
	for j := range f.names {
		f.names[j].Blur()
	}
	f.message.Blur()

	f.focusIndex = i
	switch {
	case i == focusSubmit:
		return nil
	case contact.Field(i) == contact.FieldMessage:
		return f.message.Focus()
	default:
		return f.names[i].Focus()
	}
}

// Screen describes the rendered form: the header, each input with its
// visible error, and the submit button.
func (f *ContactForm) Screen() Screen {
	s := Screen{{Role: RoleHeading, Text: FormTitle}}
	visible := f.Errors()

	for _, fld := range contact.Fields {
		s = append(s, Node{
			Role:    RoleTextbox,
			ID:      fld.String(),
			Label:   fld.Label(),
			Text:    f.value(fld),
			Focused: f.focusIndex == int(fld),
		})
		if msg := visible.Get(fld); msg != "" {
			s = append(s, Node{Role: RoleAlert, Marker: MarkerError, Text: msg})
		}
	}

	return append(s, Node{
		Role:    RoleButton,
		ID:      SubmitID,
		Text:    "Submit",
		Focused: f.focusIndex == focusSubmit,
	})
}

// View renders the form. Width bounds the input boxes; zero uses the
// default input width.
func (f *ContactForm) View(width int) string {
	inputWidth := 44
	if width > 0 && width-8 < inputWidth {
		inputWidth = width - 8
	}
	if inputWidth < 10 {
		inputWidth = 10
	}

	visible := f.Errors()
	parts := []string{formTitleStyle.Render(FormTitle)}

	for _, fld := range contact.Fields {
		focused := f.focusIndex == int(fld)

		label := formLabelStyle.Render(fld.Label())
		boxStyle := formInputStyle
		if focused {
			label = formLabelFocusedStyle.Render(fld.Label())
			boxStyle = formInputFocusedStyle
		}

		var input string
		if fld == contact.FieldMessage {
			input = f.message.View()
		} else {
			input = f.names[fld].View()
		}
		parts = append(parts, label)
		if focused {
			parts = append(parts, mutedStyle.Render(FieldHelp(fld)))
		}
		parts = append(parts, boxStyle.Width(inputWidth).Render(input))

		if msg := visible.Get(fld); msg != "" {
			parts = append(parts, formErrorStyle.Render("✗ "+msg))
		}
		parts = append(parts, "")
	}

	button := buttonStyle.Render("Submit")
	if f.focusIndex == focusSubmit {
		button = buttonFocusedStyle.Render("Submit")
	}
	parts = append(parts, button)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
