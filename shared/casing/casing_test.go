package casing_test

import (
	"encoding/json"
	"hotelops/shared/casing"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "guestName", expected: "guest_name"},
		{input: "checkInDate", expected: "check_in_date"},
		{input: "minStockLevel", expected: "min_stock_level"},
		{input: "employeeId", expected: "employee_id"},
		{input: "menuItemID", expected: "menu_item_id"},
		{input: "URLPath", expected: "url_path"},
		{input: "guest_name", expected: "guest_name"},
		{input: "rating", expected: "rating"},
		{input: "line2Address", expected: "line2_address"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, casing.ToSnake(tt.input))
		})
	}
}

func TestToCamel(t *testing.T) {
	assert.Equal(t, "guestName", casing.ToCamel("guest_name"))
	assert.Equal(t, "checkOutDate", casing.ToCamel("check_out_date"))
	assert.Equal(t, "rating", casing.ToCamel("rating"))
}

type orderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type audit struct {
	CreatedBy string `json:"created_by"`
}

type orderRequest struct {
	GuestName  string          `json:"guest_name"`
	RoomNumber string          `json:"room_number"`
	Adults     int             `json:"adults"`
	Items      []orderLine     `json:"items"`
	Amenities  map[string]bool `json:"amenities"`
	Extra      any             `json:"extra"`
	audit
}

func TestNormalizeJSON(t *testing.T) {
	input := []byte(`{"guestName":"Ana","roomNumber":"101","items":[{"menuItemId":"m1","quantity":2}],"adults":2,"createdBy":"u1"}`)

	out, err := casing.NormalizeJSON(input, &orderRequest{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "Ana", decoded["guest_name"])
	assert.Equal(t, "101", decoded["room_number"])
	assert.Equal(t, "u1", decoded["created_by"])
	assert.InDelta(t, 2, decoded["adults"], 0)

	items, ok := decoded["items"].([]any)
	require.True(t, ok)

	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "m1", first["menu_item_id"])
}

func TestNormalizeJSONKeepsFreeFormKeys(t *testing.T) {
	input := []byte(`{"roomNumber":"101","amenities":{"miniBar":true,"seaView":false},"extra":{"lateCheckout":"yes"},"unknownKey":1}`)

	var req orderRequest

	out, err := casing.NormalizeJSON(input, &req)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &req))

	assert.Equal(t, "101", req.RoomNumber)
	assert.Equal(t, map[string]bool{"miniBar": true, "seaView": false}, req.Amenities)
	assert.Equal(t, map[string]any{"lateCheckout": "yes"}, req.Extra)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "unknownKey")
}

func TestNormalizeJSONPrefersSnakeCase(t *testing.T) {
	out, err := casing.NormalizeJSON([]byte(`{"guest_name":"snake","guestName":"camel"}`), &orderRequest{})
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "snake", decoded["guest_name"])
}

func TestNormalizeJSONInvalid(t *testing.T) {
	_, err := casing.NormalizeJSON([]byte(`{"guestName":`), &orderRequest{})
	assert.Error(t, err)
}

func TestFormValue(t *testing.T) {
	values := map[string][]string{
		"roomType": {"suite"},
		"price":    {"120"},
	}

	assert.Equal(t, "suite", casing.FormValue(values, "room_type"))
	assert.Equal(t, "120", casing.FormValue(values, "price"))
	assert.Empty(t, casing.FormValue(values, "capacity"))
}
