package contact

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Errors maps each failing field to its single validation message.
// A field that passes has no entry.
type Errors map[Field]string

// Get returns the message for f, or "" when f is valid.
func (e Errors) Get(f Field) string {
	return e[f]
}

// Has reports whether f failed validation.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// First returns the first failing field in display order.
func (e Errors) First() (Field, bool) {
	for _, f := range Fields {
		if e.Has(f) {
			return f, true
		}
	}
	return 0, false
}

// Validator checks Values against the form's rules and renders the
// resulting messages in English.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator builds a Validator with the English message catalogue.
func NewValidator() (*Validator, error) {
	v := validator.New()

	// Messages use the form name of a field ("firstName"), not the Go name.
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		if name := sf.Tag.Get("form"); name != "" && name != "-" {
			return name
		}
		return sf.Name
	})

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	// The default "min" message counts in plural forms; the form wants a flat one.
	err := v.RegisterTranslation("min", trans,
		func(t ut.Translator) error {
			return t.Add("min", "{0} must have at least {1} characters", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T("min", fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		return nil, fmt.Errorf("register min translation: %w", err)
	}

	return &Validator{validate: v, trans: trans}, nil
}

// MustNewValidator is NewValidator for package-level defaults; it panics if
// the built-in catalogue cannot be registered.
func MustNewValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate runs every rule and returns one message per failing field.
// The validator stops at the first failing rule of a field, so "required"
// wins over "min" and "email" for an empty value.
func (v *Validator) Validate(values Values) Errors {
	errs := Errors{}

	err := v.validate.Struct(values)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on programmer error (e.g. a bad tag); surface it on
		// the first field so it is not silently dropped.
		errs[FieldFirstName] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		f, ok := ParseField(fe.Field())
		if !ok || errs.Has(f) {
			continue
		}
		errs[f] = fe.Translate(v.trans)
	}
	return errs
}

// ValidateField runs the rules of a single field.
func (v *Validator) ValidateField(values Values, f Field) string {
	return v.Validate(values).Get(f)
}
