package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	NameInventoryLowStock = "inventory.low_stock"
	NameOrderStatus       = "order.status_changed"
	NameTaskOverdue       = "task.overdue"
)

// Event is a domain fact published after a successful write.
type Event struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Actor      string    `json:"actor"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New builds an event named "<entity>.<action>".
func New(entity, action, entityID, actor string, payload any) Event {
	return Named(entity+"."+action, entity, entityID, actor, payload)
}

// Named builds an event whose name does not follow the "<entity>.<action>" pattern.
func Named(name, entity, entityID, actor string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Name:       name,
		Entity:     entity,
		EntityID:   entityID,
		Actor:      actor,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}
