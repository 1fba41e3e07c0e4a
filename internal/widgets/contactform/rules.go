// Package contactform validates the contact form and runs its simulated
// submission.
package contactform

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names bound by the form
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Fields lists the validated fields in display order
var Fields = []string{FieldName, FieldEmail, FieldMessage}

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Values holds the raw field values
type Values struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Get returns the value of the named field
func (v Values) Get(field string) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldMessage:
		return v.Message
	}
	return ""
}

// Set assigns the named field; unknown names are ignored
func (v *Values) Set(field, value string) {
	switch field {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldMessage:
		v.Message = value
	}
}

// Trimmed returns the values with surrounding whitespace removed
func (v Values) Trimmed() Values {
	return Values{
		Name:    strings.TrimSpace(v.Name),
		Email:   strings.TrimSpace(v.Email),
		Message: strings.TrimSpace(v.Message),
	}
}

// Errors maps field name to its message. An empty map means valid.
type Errors map[string]string

// Valid reports whether no field failed
func (e Errors) Valid() bool {
	return len(e) == 0
}

// ValidEmail reports whether s has the local@domain.tld shape
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateField checks one field and returns its error message, or ""
// when the value passes. Unknown fields always pass.
func ValidateField(field, value string) string {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		if value == "" {
			return "Name is required"
		}
		if utf8.RuneCountInString(value) < MinNameLength {
			return "Name must be at least 2 characters long"
		}
	case FieldEmail:
		if value == "" {
			return "Email is required"
		}
		if !ValidEmail(value) {
			return "Please enter a valid email address"
		}
	case FieldMessage:
		if value == "" {
			return "Message is required"
		}
		if utf8.RuneCountInString(value) < MinMessageLength {
			return "Message must be at least 10 characters long"
		}
	}
	return ""
}

// Validate runs every rule, so all failures surface together
func Validate(v Values) Errors {
	errs := Errors{}
	for _, field := range Fields {
		if msg := ValidateField(field, v.Get(field)); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
