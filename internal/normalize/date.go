package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"eventbooking/internal/domain"
)

// dateLayouts are tried in order before falling back to the natural-language
// parser. "Parsable date string" is intentionally permissive.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
}

var dateParser = newDateParser()

func newDateParser() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}

// Date parses raw as a calendar date and returns the date portion only, in
// YYYY-MM-DD, using the parsed instant's UTC calendar date. Any time-of-day
// or timezone component in raw is discarded. Fails with ErrInvalidDate when
// raw cannot be parsed.
func Date(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domain.NewFieldError(domain.ErrInvalidDate, "date", "date must not be empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	result, err := dateParser.Parse(trimmed, time.Now())
	if err != nil || result == nil {
		return "", domain.NewFieldError(domain.ErrInvalidDate, "date", fmt.Sprintf("cannot parse %q as a date", raw))
	}
	return result.Time.UTC().Format("2006-01-02"), nil
}
