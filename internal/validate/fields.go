// Package validate holds the per-field rules applied before any store
// write. Values are trimmed before storage; all failures carry the
// offending field name.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"eventbooking/internal/domain"
)

// RequiredText checks a required text field and returns the trimmed value.
// An absent value fails with ErrRequiredFieldMissing; a present but blank
// value fails with ErrEmptyField.
func RequiredText(field, value string) (string, error) {
	if value == "" {
		return "", domain.NewFieldError(domain.ErrRequiredFieldMissing, field, "is required")
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domain.NewFieldError(domain.ErrEmptyField, field, "must not be blank")
	}
	return trimmed, nil
}

// RequiredList checks a non-empty ordered sequence of non-empty text and
// returns the elements trimmed.
func RequiredList(field string, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, domain.NewFieldError(domain.ErrEmptyArray, field, "must contain at least one entry")
	}
	out := make([]string, len(items))
	for i, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			return nil, domain.NewFieldError(domain.ErrInvalidElement, field, fmt.Sprintf("entry %d must not be blank", i+1))
		}
		out[i] = trimmed
	}
	return out, nil
}

// Local part and domain exclude '@' and whitespace; the domain contains at
// least one dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email trims and lower-cases the address, then checks it against the
// local-part@domain shape. The normalized form is what gets stored.
func Email(field, value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(normalized) {
		return "", domain.NewFieldError(domain.ErrInvalidEmail, field, fmt.Sprintf("%q is not a valid email address", normalized))
	}
	return normalized, nil
}
