// Package timeutil normalizes human-supplied timestamp strings of the form
// "YYYY-MM-DD HH:mm:ss TIMEZONE" into absolute UTC instants for range queries
// against stored (UTC) timestamps.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrFormat is wrapped by every parse failure returned from this package.
var ErrFormat = errors.New("invalid time string format")

// istOffset is the fixed India Standard Time offset (UTC+5:30). IST has no
// daylight-saving variant.
const istOffset = 5*time.Hour + 30*time.Minute

// Accepted layouts for the date-time portion, tried in order.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParsedTime is the result of normalizing a timestamp string.
type ParsedTime struct {
	// Date is the absolute UTC instant.
	Date time.Time
	// Timezone is the trimmed, upper-cased zone label from the input.
	Timezone string
}

// ParseTimezoneString splits s into a date-time portion and a trailing
// timezone label, parses the date-time portion as UTC, and shifts it backward
// by 5h30m when the label is IST. Any other label applies no shift; the
// date-time portion is trusted to already be UTC.
//
// The date-time portion may itself contain a space ("2006-01-02 15:04:05"),
// so the label is always the final whitespace-separated token.
func ParseTimezoneString(s string) (ParsedTime, error) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return ParsedTime{}, fmt.Errorf(
			"%w: expected \"YYYY-MM-DD HH:mm:ss TIMEZONE\", got %q", ErrFormat, s)
	}

	label := strings.ToUpper(strings.TrimSpace(tokens[len(tokens)-1]))
	datePart := strings.Join(tokens[:len(tokens)-1], " ")

	var parsed time.Time
	var err error
	for _, layout := range layouts {
		parsed, err = time.ParseInLocation(layout, datePart, time.UTC)
		if err == nil {
			break
		}
	}
	if err != nil {
		return ParsedTime{}, fmt.Errorf("%w: unparseable date part %q", ErrFormat, datePart)
	}

	if label == "IST" {
		parsed = parsed.Add(-istOffset)
	}

	return ParsedTime{Date: parsed, Timezone: label}, nil
}
