package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	s3Mocks "hotelops/infras/s3/mocks"
	roomMocks "hotelops/internal/domains/room/mocks"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/service"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *roomMocks.MockRoom
	s3        *s3Mocks.MockS3
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      roomMocks.NewMockRoom(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3, f.publisher)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func imageHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range names {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, name))
		header.Set("Content-Type", "image/png")

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["images"]
}

func roomRequest(images []*multipart.FileHeader) dto.RoomRequest {
	return dto.RoomRequest{
		RoomNumber: "101",
		RoomType:   "double",
		Price:      120,
		Capacity:   2,
		Amenities:  model.Amenities{"wifi": true},
		Images:     images,
	}
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		images    []string
		setupMock func(f fixture)
		wantCode  int
		wantField string
		wantErr   bool
	}{
		{
			name:   "uploads images then stores the room",
			images: []string{"a.png", "b.png"},
			setupMock: func(f fixture) {
				f.s3.EXPECT().UploadFile(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any()).Return("https://cdn/room/a.png", nil)
				f.s3.EXPECT().UploadFile(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any()).Return("https://cdn/room/b.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Room) error {
						assert.Equal(t, []string{"https://cdn/room/a.png", "https://cdn/room/b.png"}, []string(m.Images))
						assert.Equal(t, model.StatusAvailable, m.Status)

						return nil
					})
			},
		},
		{
			name:      "no image",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
			wantField: "images",
		},
		{
			name:   "duplicate room number removes uploads",
			images: []string{"a.png"},
			setupMock: func(f fixture) {
				f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/room/a.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.ConflictField("room_number", "Room number already exists"))
				f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/room/a.png").Return(nil)
			},
			wantCode:  http.StatusConflict,
			wantField: "room_number",
		},
		{
			name:   "failed upload removes earlier uploads",
			images: []string{"a.png", "b.png"},
			setupMock: func(f fixture) {
				gomock.InOrder(
					f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/room/a.png", nil),
					f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable")),
				)
				f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/room/a.png").Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			var headers []*multipart.FileHeader
			if len(tt.images) > 0 {
				headers = imageHeaders(t, tt.images...)
			}

			res, err := f.svc.Create(context.Background(), roomRequest(headers))

			time.Sleep(10 * time.Millisecond)

			switch {
			case tt.wantCode != 0:
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Contains(t, failure.GetFields(err), tt.wantField)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Len(t, res.Images, len(tt.images))
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	current := model.Room{ID: "r-1", RoomNumber: "101", Images: []string{"https://cdn/room/old.png"}}

	t.Run("keeps images when none are uploaded", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldImages)
				assert.NotContains(t, fields, model.FieldStatus)
				assert.Equal(t, 120.0, fields[model.FieldPrice])

				return nil
			})

		err := f.svc.Update(context.Background(), roomRequest(nil), "r-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("replaces images and deletes the old ones", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/room/new.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldImages)

				return nil
			})
		f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/room/old.png").Return(nil)

		err := f.svc.Update(context.Background(), roomRequest(imageHeaders(t, "new.png")), "r-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.Update(context.Background(), roomRequest(nil), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "r-1", Images: []string{"https://cdn/room/1.png", "https://cdn/room/2.png"}}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.s3.EXPECT().DeleteByURL(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := f.svc.Delete(context.Background(), "r-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "r-1", RoomNumber: "101", Amenities: model.Amenities{"tv": true}}, nil)

	res, err := f.svc.Get(context.Background(), "r-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "101", res.RoomNumber)
	assert.Equal(t, []string{}, res.Images)
}
