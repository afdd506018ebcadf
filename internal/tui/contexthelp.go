package tui

import "github.com/andyrewlee/contactform/internal/contact"

// FieldHelp returns the inline hint shown under the focused field's label.
func FieldHelp(f contact.Field) string {
	switch f {
	case contact.FieldFirstName, contact.FieldLastName:
		return "Required, at least 5 characters"
	case contact.FieldEmail:
		return "Required, e.g. name@example.com"
	case contact.FieldMessage:
		return "Optional"
	default:
		return ""
	}
}
