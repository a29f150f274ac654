package s3_test

import (
	"hotelops/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name         string
		publicDomain string
		apiEndpoint  string
		url          string
		expected     string
	}{
		{
			name:         "public domain url",
			publicDomain: "https://cdn.hotel.test",
			url:          "https://cdn.hotel.test/room/3f1c.png",
			expected:     "room/3f1c.png",
		},
		{
			name:         "public domain with trailing slash",
			publicDomain: "https://cdn.hotel.test/",
			url:          "https://cdn.hotel.test/menu/a.jpg",
			expected:     "menu/a.jpg",
		},
		{
			name:        "api endpoint url",
			apiEndpoint: "https://s3.hotel.test",
			url:         "https://s3.hotel.test/hotel-assets/room/3f1c.png",
			expected:    "room/3f1c.png",
		},
		{
			name:         "foreign url",
			publicDomain: "https://cdn.hotel.test",
			apiEndpoint:  "https://s3.hotel.test",
			url:          "https://example.com/room/3f1c.png",
			expected:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectKeyFromURL(tt.publicDomain, tt.apiEndpoint, "hotel-assets", tt.url))
		})
	}
}
