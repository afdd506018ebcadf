// Package contact holds the contact form's field model and its validation
// rules, independent of how the form is rendered.
package contact

import "strings"

// Field identifies one of the contact form's inputs.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldEmail
	FieldMessage
)

// FieldCount is the number of inputs on the form.
const FieldCount = 4

// Fields lists every field in display order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

// String returns the field's name as it appears in validation messages.
func (f Field) String() string {
	switch f {
	case FieldFirstName:
		return "firstName"
	case FieldLastName:
		return "lastName"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	}
	return "unknown"
}

// Label returns the human-readable label shown next to the input.
// Required fields carry a trailing asterisk.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name*"
	case FieldLastName:
		return "Last Name*"
	case FieldEmail:
		return "Email*"
	case FieldMessage:
		return "Message"
	}
	return ""
}

// Required reports whether the field must pass validation before submit.
func (f Field) Required() bool {
	return f != FieldMessage
}

// ParseField maps a field name ("firstName", "email", ...) back to a Field.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}

// Values is the text content of the four inputs. A copy taken at submit time
// is the snapshot handed to the display.
type Values struct {
	FirstName string `form:"firstName" json:"firstName" validate:"required,min=5"`
	LastName  string `form:"lastName" json:"lastName" validate:"required,min=5"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Message   string `form:"message" json:"message,omitempty"`
}

// Get returns the value of a single field.
func (v Values) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldEmail:
		return v.Email
	case FieldMessage:
		return v.Message
	}
	return ""
}

// Set returns a copy of v with field f replaced.
func (v Values) Set(f Field, s string) Values {
	switch f {
	case FieldFirstName:
		v.FirstName = s
	case FieldLastName:
		v.LastName = s
	case FieldEmail:
		v.Email = s
	case FieldMessage:
		v.Message = s
	}
	return v
}

// HasMessage reports whether the optional message was filled in.
func (v Values) HasMessage() bool {
	return v.Message != ""
}
