package model

import (
	"hotelops/shared/model"
	"time"
)

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID         = "id"
	FieldEvent      = "event"
	FieldEntity     = "entity"
	FieldEntityID   = "entity_id"
	FieldActor      = "actor"
	FieldOccurredAt = "occurred_at"
)

var SortableFields = []string{FieldOccurredAt, FieldEvent, FieldEntity}

// Activity is one consumed domain event. Payload holds the raw JSON.
type Activity struct {
	ID         string    `db:"id"`
	Event      string    `db:"event"`
	Entity     string    `db:"entity"`
	EntityID   string    `db:"entity_id"`
	Actor      string    `db:"actor"`
	Payload    string    `db:"payload"`
	OccurredAt time.Time `db:"occurred_at"`
	model.Metadata
}
