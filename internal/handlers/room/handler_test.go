package room_test

import (
	"bytes"
	"context"
	"encoding/json"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/internal/domains/room/model/dto"
	roomMocks "hotelops/internal/domains/room/service/mocks"
	"hotelops/internal/handlers/room"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if withImage {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="images"; filename="front.png"`)
		header.Set("Content-Type", "image/png")

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/rooms", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler_CreateRoom(t *testing.T) {
	valid := map[string]string{
		"room_number":     "204",
		"roomType":        "suite",
		"price":           "250",
		"capacity":        "2",
		"amenities[wifi]": "true",
	}

	tests := []struct {
		name       string
		fields     map[string]string
		withImage  bool
		setupMock  func(svc *roomMocks.MockRoom)
		wantCode   int
		wantFields []string
	}{
		{
			name:      "created",
			fields:    valid,
			withImage: true,
			setupMock: func(svc *roomMocks.MockRoom) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.RoomRequest) (dto.RoomResponse, error) {
						assert.Equal(t, "204", req.RoomNumber)
						assert.Equal(t, "suite", req.RoomType)
						assert.InDelta(t, 250.0, req.Price, 0.001)
						assert.Len(t, req.Images, 1)

						return dto.RoomResponse{
							ID:         "r-1",
							RoomNumber: req.RoomNumber,
							RoomType:   req.RoomType,
							Price:      req.Price,
							Capacity:   req.Capacity,
							Images:     []string{"rooms/r-1/front.png"},
							Status:     "available",
						}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "missing room type and price",
			fields: map[string]string{
				"room_number": "204",
				"capacity":    "2",
			},
			withImage:  true,
			setupMock:  func(_ *roomMocks.MockRoom) {},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"room_type", "price"},
		},
		{
			name: "price that is not a number",
			fields: map[string]string{
				"room_number": "204",
				"room_type":   "suite",
				"price":       "cheap",
				"capacity":    "2",
			},
			setupMock:  func(_ *roomMocks.MockRoom) {},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(svc)

			handler := room.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, multipartRequest(t, tt.fields, tt.withImage))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantFields != nil {
				var body struct {
					Errors map[string]string `json:"errors"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

				for _, field := range tt.wantFields {
					assert.Contains(t, body.Errors, field)
				}

				return
			}

			var body struct {
				Data dto.RoomResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, "r-1", body.Data.ID)
			assert.Equal(t, "suite", body.Data.RoomType)
			assert.Equal(t, []string{"rooms/r-1/front.png"}, body.Data.Images)
		})
	}
}
