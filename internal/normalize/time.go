package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"eventbooking/internal/domain"
)

var (
	rangeSplit = regexp.MustCompile(`\s*-\s*`)
	clockPart  = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{1,2}))?(am|pm)?$`)
)

// Time canonicalizes a 12- or 24-hour clock time, optionally a range, into
// HH:mm or HH:mm-HH:mm. Fails with ErrInvalidTime on malformed input. A
// range's end is not required to be after its start.
func Time(raw string) (string, error) {
	parts := rangeSplit.Split(strings.TrimSpace(raw), -1)
	if len(parts) > 2 {
		return "", domain.NewFieldError(domain.ErrInvalidTime, "time", "invalid range format")
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		normalized, err := clockTime(part)
		if err != nil {
			return "", err
		}
		out = append(out, normalized)
	}
	return strings.Join(out, "-"), nil
}

func clockTime(part string) (string, error) {
	m := clockPart.FindStringSubmatch(part)
	if m == nil {
		return "", domain.NewFieldError(domain.ErrInvalidTime, "time", fmt.Sprintf("cannot parse %q as a time", part))
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}
	if hour > 23 || minute > 59 {
		return "", domain.NewFieldError(domain.ErrInvalidTime, "time", fmt.Sprintf("%d:%02d is out of range", hour, minute))
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
