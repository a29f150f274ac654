package docs_test

import (
	"encoding/json"
	"hotelops/docs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocument(t *testing.T) {
	var doc struct {
		Info struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}

	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "Hotel Operations API", doc.Info.Title)
	assert.Equal(t, docs.SwaggerInfo.Description, doc.Info.Description)

	routes := map[string][]string{
		"/api/rooms":                 {"get", "post"},
		"/api/bookings/{id}":         {"get", "put", "delete"},
		"/api/tasks":                 {"get", "post"},
		"/api/orders/{id}/status":    {"patch"},
		"/api/create-payment-intent": {"post"},
	}

	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)

		for _, method := range methods {
			assert.Contains(t, doc.Paths[path], method, path)
		}
	}

	assert.Contains(t, doc.Definitions, "room.RoomResponse")
	assert.Contains(t, doc.Definitions, "response.Error")
}
