package dto_test

import (
	"hotelops/internal/domains/activity/model"
	"hotelops/internal/domains/activity/model/dto"
	gDto "hotelops/shared/dto"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		expected []any
	}{
		{
			name:     "no filters",
			query:    url.Values{"page": {"2"}},
			expected: []any{},
		},
		{
			name:  "entity and id",
			query: url.Values{"entity": {"booking"}, "entity_id": {"b-1"}, "sort_by": {"occurred_at"}},
			expected: []any{
				gDto.Filter{Field: model.FieldEntity, Operator: gDto.FilterOperatorEq, Value: "booking", Table: model.TableName},
				gDto.Filter{Field: model.FieldEntityID, Operator: gDto.FilterOperatorEq, Value: "b-1", Table: model.TableName},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := dto.FilterFromQuery(tt.query)

			assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
			assert.Equal(t, tt.expected, group.Filters)
		})
	}
}
