package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestRequiredText(t *testing.T) {
	t.Run("returns trimmed value", func(t *testing.T) {
		got, err := RequiredText("venue", "  Town Hall  ")
		require.NoError(t, err)
		assert.Equal(t, "Town Hall", got)
	})

	t.Run("absent value", func(t *testing.T) {
		_, err := RequiredText("venue", "")
		assert.ErrorIs(t, err, domain.ErrRequiredFieldMissing)
	})

	t.Run("blank value", func(t *testing.T) {
		_, err := RequiredText("venue", "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyField)
	})
}

func TestRequiredList(t *testing.T) {
	t.Run("returns trimmed elements", func(t *testing.T) {
		got, err := RequiredList("agenda", []string{" opening ", "talks"})
		require.NoError(t, err)
		assert.Equal(t, []string{"opening", "talks"}, got)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := RequiredList("agenda", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyArray)
	})

	t.Run("blank element", func(t *testing.T) {
		_, err := RequiredList("tags", []string{"go", "  "})
		assert.ErrorIs(t, err, domain.ErrInvalidElement)
	})
}

func TestEmail(t *testing.T) {
	t.Run("trims and lower-cases", func(t *testing.T) {
		got, err := Email("email", "  USER@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", got)
	})

	t.Run("invalid shapes", func(t *testing.T) {
		for _, value := range []string{"", "not-an-email", "a@b", "a b@example.com", "a@@example.com", "@example.com", "user@"} {
			_, err := Email("email", value)
			assert.ErrorIs(t, err, domain.ErrInvalidEmail, "value %q", value)

			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "email", fieldErr.Field)
		}
	})
}
