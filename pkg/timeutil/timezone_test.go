package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimezoneStringIST(t *testing.T) {
	got, err := ParseTimezoneString("2024-01-15 10:00:00 IST")
	require.NoError(t, err)

	want := time.Date(2024, 1, 15, 4, 30, 0, 0, time.UTC)
	assert.True(t, got.Date.Equal(want), "expected %v, got %v", want, got.Date)
	assert.Equal(t, "IST", got.Timezone)
}

func TestParseTimezoneStringUTC(t *testing.T) {
	got, err := ParseTimezoneString("2024-01-15 10:00:00 UTC")
	require.NoError(t, err)

	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, got.Date.Equal(want), "expected %v, got %v", want, got.Date)
	assert.Equal(t, "UTC", got.Timezone)
}

func TestParseTimezoneStringLabelNormalization(t *testing.T) {
	got, err := ParseTimezoneString("2024-06-01T00:00:00 ist")
	require.NoError(t, err)

	want := time.Date(2024, 5, 31, 18, 30, 0, 0, time.UTC)
	assert.True(t, got.Date.Equal(want))
	assert.Equal(t, "IST", got.Timezone)
}

func TestParseTimezoneStringUnknownLabelNoShift(t *testing.T) {
	got, err := ParseTimezoneString("2024-01-15T10:00:00 PST")
	require.NoError(t, err)

	// Only IST gets an offset; every other label is trusted to be UTC.
	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, got.Date.Equal(want))
	assert.Equal(t, "PST", got.Timezone)
}

func TestParseTimezoneStringMissingLabel(t *testing.T) {
	_, err := ParseTimezoneString("2024-01-15T10:00:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseTimezoneStringBadDatePart(t *testing.T) {
	_, err := ParseTimezoneString("not-a-date UTC")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseTimezoneStringEmpty(t *testing.T) {
	_, err := ParseTimezoneString("")
	assert.ErrorIs(t, err, ErrFormat)
}
