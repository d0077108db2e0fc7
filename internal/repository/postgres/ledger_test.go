package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBoundsUTC(t *testing.T) {
	start, end := monthBoundsUTC(time.September, 2025)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), end)

	// Year rollover
	start, end = monthBoundsUTC(time.December, 2024)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), end)

	inside := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.True(t, inside.After(start) && inside.Before(end))
}
