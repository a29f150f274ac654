package event_test

import (
	"hotelops/shared/event"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	evt := event.New("booking", event.ActionCreated, "b-1", "front-desk", map[string]any{"nights": 2})

	assert.Equal(t, "booking.created", evt.Name)
	assert.Equal(t, "booking", evt.Entity)
	assert.Equal(t, "b-1", evt.EntityID)
	assert.Equal(t, "front-desk", evt.Actor)
	assert.NotEmpty(t, evt.ID)
	assert.False(t, evt.OccurredAt.IsZero())
}

func TestNamed(t *testing.T) {
	evt := event.Named(event.NameInventoryLowStock, "inventory", "i-1", "system", nil)

	assert.Equal(t, "inventory.low_stock", evt.Name)
	assert.Equal(t, "inventory", evt.Entity)
}
