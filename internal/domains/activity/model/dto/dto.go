package dto

import (
	"encoding/json"
	"fmt"
	"hotelops/internal/domains/activity/model"
	"hotelops/shared"
	"hotelops/shared/event"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"net/url"
	"time"
)

const emptyPayload = "{}"

// FilterFromQuery turns the event, entity and entity_id query parameters into equality filters.
func FilterFromQuery(query url.Values) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldEvent, model.FieldEntity, model.FieldEntityID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	return filterGroup
}

// FromEvent maps a consumed event to its activity row. The event ID is reused so redelivered
// messages collide on the primary key.
func FromEvent(evt event.Event) (model.Activity, error) {
	payload := emptyPayload

	if evt.Payload != nil {
		raw, err := json.Marshal(evt.Payload)
		if err != nil {
			return model.Activity{}, fmt.Errorf("failed to marshal event payload: %w", err)
		}

		payload = string(raw)
	}

	return model.Activity{
		ID:         evt.ID,
		Event:      evt.Name,
		Entity:     evt.Entity,
		EntityID:   evt.EntityID,
		Actor:      evt.Actor,
		Payload:    payload,
		OccurredAt: evt.OccurredAt,
		Metadata:   gModel.NewMetadata(evt.Actor),
	}, nil
}

type ActivityResponse struct {
	ID         string          `json:"id"`
	Event      string          `json:"event"`
	Entity     string          `json:"entity"`
	EntityID   string          `json:"entity_id"`
	Actor      string          `json:"actor"`
	Payload    json.RawMessage `json:"payload" swaggertype:"object"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (r *ActivityResponse) FromModel(model model.Activity) {
	r.ID = model.ID
	r.Event = model.Event
	r.Entity = model.Entity
	r.EntityID = model.EntityID
	r.Actor = model.Actor
	r.OccurredAt = model.OccurredAt

	r.Payload = json.RawMessage(emptyPayload)
	if json.Valid([]byte(model.Payload)) {
		r.Payload = json.RawMessage(model.Payload)
	}
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, mod := range models {
		r.Activities[i].FromModel(mod)
	}
}
