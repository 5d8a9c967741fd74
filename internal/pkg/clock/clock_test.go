package clock_test

import (
	"testing"
	"time"

	"marketplace/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	moment := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	c := clock.NewFixed(moment)

	assert.True(t, c.Now().Equal(moment))
	assert.Equal(t, time.UTC, c.Now().Location())
}

func TestSystemClock_ReturnsUTC(t *testing.T) {
	before := time.Now()
	now := clock.NewSystem().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
}
