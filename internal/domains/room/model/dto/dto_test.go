package dto_test

import (
	"bytes"
	"fmt"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/shared/failure"
	"hotelops/shared/validator"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type image struct {
	name        string
	contentType string
	size        int
}

func buildForm(t *testing.T, fields map[string]string, images ...image) *multipart.Form {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	for _, img := range images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, img.name))
		header.Set("Content-Type", img.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(bytes.Repeat([]byte("x"), img.size))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)

	return form
}

func TestRoomRequest_Bind(t *testing.T) {
	form := buildForm(t, map[string]string{
		"roomNumber":      "101",
		"room_type":       "Deluxe",
		"price":           "149.999",
		"capacity":        "3",
		"amenities[wifi]": "true",
		"amenities[TV]":   "on",
		"amenities[bath]": "false",
		"description":     " Sea view ",
	}, image{name: "a.png", contentType: "image/png", size: 10})

	req := dto.RoomRequest{}
	require.NoError(t, req.Bind(form))

	assert.Equal(t, "101", req.RoomNumber)
	assert.Equal(t, "deluxe", req.RoomType)
	assert.Equal(t, 149.999, req.Price)
	assert.Equal(t, 3, req.Capacity)
	assert.Equal(t, "Sea view", req.Description)
	assert.Equal(t, model.Amenities{"wifi": true, "tv": true, "bath": false}, req.Amenities)
	assert.Len(t, req.Images, 1)
	assert.NoError(t, validator.ValidateStruct(&req))

	room := req.ToModel("admin", []string{"https://cdn/room/a.png"})
	assert.Equal(t, 150.0, room.Price)
	assert.Equal(t, model.StatusAvailable, room.Status)
}

func TestRoomRequest_BindInvalidNumber(t *testing.T) {
	form := buildForm(t, map[string]string{"room_number": "101", "price": "cheap"})

	err := (&dto.RoomRequest{}).Bind(form)

	assert.Contains(t, failure.GetFields(err), "price")
}

func TestRoomRequest_ImageRules(t *testing.T) {
	base := map[string]string{"room_number": "101", "room_type": "single", "price": "80", "capacity": "1"}

	tests := []struct {
		name      string
		images    []image
		wantField string
	}{
		{name: "four images", images: []image{
			{"1.png", "image/png", 1}, {"2.jpg", "image/jpeg", 1}, {"3.webp", "image/webp", 1}, {"4.jpg", "image/jpg", 1},
		}},
		{name: "five images", images: []image{
			{"1.png", "image/png", 1}, {"2.png", "image/png", 1}, {"3.png", "image/png", 1}, {"4.png", "image/png", 1}, {"5.png", "image/png", 1},
		}, wantField: "images"},
		{name: "wrong type", images: []image{{"doc.pdf", "application/pdf", 1}}, wantField: "images[0]"},
		{name: "too large", images: []image{{"big.png", "image/png", 2*1024*1024 + 1}}, wantField: "images[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.RoomRequest{}
			require.NoError(t, req.Bind(buildForm(t, base, tt.images...)))

			err := validator.ValidateStruct(&req)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			assert.Contains(t, failure.GetFields(err), tt.wantField)
		})
	}
}

func TestRoomRequest_RequireImages(t *testing.T) {
	err := (&dto.RoomRequest{}).RequireImages()

	assert.Equal(t, "At least one image is required", failure.GetFields(err)["images"])
}

func TestParseAmenities(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string][]string
		want    model.Amenities
		wantErr bool
	}{
		{name: "json object", values: map[string][]string{"amenities": {`{"WiFi":true,"pool":false}`}}, want: model.Amenities{"wifi": true, "pool": false}},
		{name: "bracket fields", values: map[string][]string{"amenities[parking]": {"1"}}, want: model.Amenities{"parking": true}},
		{name: "nothing", values: map[string][]string{}, want: model.Amenities{}},
		{name: "not an object", values: map[string][]string{"amenities": {`["wifi"]`}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseAmenities(tt.values)

			if tt.wantErr {
				assert.True(t, strings.Contains(failure.GetFields(err)["amenities"], "Amenities"))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomRequest_ToFields(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		images     []string
		wantStatus any
		wantImages bool
	}{
		{name: "status untouched when not sent"},
		{name: "status written when sent", status: model.StatusMaintenance, wantStatus: model.StatusMaintenance},
		{name: "images replaced when uploaded", images: []string{"https://cdn/room/new.png"}, wantImages: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.RoomRequest{RoomNumber: "101", RoomType: "double", Price: 99.999, Capacity: 2, Status: tt.status}

			fields := req.ToFields("housekeeping", tt.images)

			assert.Equal(t, 100.0, fields[model.FieldPrice])
			assert.Equal(t, "housekeeping", fields["modified_by"])

			status, ok := fields[model.FieldStatus]
			assert.Equal(t, tt.wantStatus != nil, ok)
			assert.Equal(t, tt.wantStatus, status)

			_, hasImages := fields[model.FieldImages]
			assert.Equal(t, tt.wantImages, hasImages)
		})
	}
}
