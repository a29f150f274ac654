package shared_test

import (
	"context"
	"errors"
	"hotelops/shared"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/constant"
	"hotelops/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid F string", input: "F", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToInt(""))
	assert.Nil(t, shared.ConvertStringToInt("two"))
	assert.Equal(t, intPtr(4), shared.ConvertStringToInt(" 4 "))
}

func TestConvertStringToFloat(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToFloat(""))
	assert.Nil(t, shared.ConvertStringToFloat("cheap"))

	value := shared.ConvertStringToFloat("129.99")
	if assert.NotNil(t, value) {
		assert.InDelta(t, 129.99, *value, 0.0001)
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{input: 10.004, expected: 10},
		{input: 10.006, expected: 10.01},
		{input: 24.56 * 0.8, expected: 19.65},
		{input: 0, expected: 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, shared.RoundMoney(tt.input), 0.0001)
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), shared.ToMinorUnits(19.99))
	assert.Equal(t, int64(12000), shared.ToMinorUnits(120))
	assert.Equal(t, int64(1), shared.ToMinorUnits(0.005))
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, shared.Actor(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")
	assert.Equal(t, "front-desk", shared.Actor(ctx))
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name       string   `db:"name"`
		Quantity   *int     `db:"quantity"`
		Available  *bool    `db:"available"`
		Notes      *string  `db:"notes"`
		Images     []string `db:"images"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	zero := 0
	available := false

	result := shared.TransformFields(updateRequest{
		Name:       "Towels",
		Quantity:   &zero,
		Available:  &available,
		NoDBTag:    "ignored",
		IgnoredTag: "ignored",
	}, "housekeeping")

	assert.Equal(t, "Towels", result["name"])
	assert.Equal(t, 0, result["quantity"])
	assert.Equal(t, false, result["available"])
	assert.NotContains(t, result, "notes")
	assert.NotContains(t, result, "images")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "housekeeping", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestTransformFieldsAcceptsPointerToStruct(t *testing.T) {
	type updateRequest struct {
		Title string `db:"title"`
	}

	result := shared.TransformFields(&updateRequest{Title: "Restock bar"}, "system")

	assert.Equal(t, "Restock bar", result["title"])
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	assert.Equal(t, expected, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildCacheKey("limiter", "1.2.3.4", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{Filters: []any{dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq}}}

	first := shared.BuildCacheKeyWithQuery("room:get_all", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:get_all", params, filter)
	other := shared.BuildCacheKeyWithQuery("room:get_all", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Contains(t, first, "room:get_all:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "room:get_all*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "room:get_all")

	mockCache.EXPECT().Clear(gomock.Any(), "room:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "room:count")
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
