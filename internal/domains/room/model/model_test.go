package model_test

import (
	"hotelops/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmenities_Value(t *testing.T) {
	value, err := model.Amenities{"wifi": true}.Value()

	assert.NoError(t, err)
	assert.JSONEq(t, `{"wifi":true}`, string(value.([]byte)))

	value, err = model.Amenities(nil).Value()

	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}

func TestAmenities_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    model.Amenities
		wantErr bool
	}{
		{name: "bytes", src: []byte(`{"tv":true,"minibar":false}`), want: model.Amenities{"tv": true, "minibar": false}},
		{name: "string", src: `{"wifi":true}`, want: model.Amenities{"wifi": true}},
		{name: "null", src: nil, want: model.Amenities{}},
		{name: "unsupported type", src: 42, wantErr: true},
		{name: "malformed json", src: []byte(`{`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var amenities model.Amenities

			err := amenities.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, amenities)
		})
	}
}
