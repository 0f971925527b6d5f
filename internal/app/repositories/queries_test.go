package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The event partition is boundary-sensitive: an event starting exactly
// now must still list as upcoming, and one ending exactly now is not
// yet past.
func TestEventPartitionBoundaries(t *testing.T) {
	assert.Equal(t, `event_start >= $1`, upcomingCondition)
	assert.Equal(t, `event_end IS NOT NULL AND event_end < $1`, pastCondition)
}

func TestListOrderingClauses(t *testing.T) {
	assert.Equal(t, `display_order, name`, partnerOrder)
	assert.Equal(t, `publish_date DESC, id`, projectOrder)
}
