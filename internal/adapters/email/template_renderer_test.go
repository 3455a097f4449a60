package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.BookingConfirmationEmailData{
		Email:      "user@example.com",
		EventTitle: "Go Conference",
		EventDate:  "2026-03-05",
		EventTime:  "09:30-17:00",
		Venue:      "Town Hall",
		Location:   "Berlin",
	}
	subject, htmlBody, textBody, err := r.Render("booking_confirmation", data)
	require.NoError(t, err)

	assert.Contains(t, subject, "Go Conference")
	assert.Contains(t, htmlBody, "Go Conference")
	assert.Contains(t, htmlBody, "2026-03-05")
	assert.Contains(t, textBody, "09:30-17:00")
	assert.Contains(t, textBody, "Town Hall")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
