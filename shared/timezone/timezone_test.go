package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atrium/shared/timezone"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse(time.RFC3339, "2025-06-01T10:30:00Z")
	assert.NoError(t, err)

	formatted := timezone.Format(parsed, time.RFC3339)
	reparsed, err := timezone.Parse(time.RFC3339, formatted)
	assert.NoError(t, err)

	assert.True(t, parsed.Equal(reparsed))
}

func TestToAppTimeKeepsInstant(t *testing.T) {
	instant := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	assert.True(t, instant.Equal(timezone.ToAppTime(instant)))
}
