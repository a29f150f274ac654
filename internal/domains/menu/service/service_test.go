package service_test

import (
	"bytes"
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	s3Mocks "hotelops/infras/s3/mocks"
	menuMocks "hotelops/internal/domains/menu/mocks"
	"hotelops/internal/domains/menu/model"
	"hotelops/internal/domains/menu/model/dto"
	"hotelops/internal/domains/menu/service"
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
	repo      *menuMocks.MockMenu
	s3        *s3Mocks.MockS3
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Menu
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      menuMocks.NewMockMenu(ctrl),
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

func imageHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="dish.png"`)
	header.Set("Content-Type", "image/png")

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["image"][0]
}

func TestMenuService_Create(t *testing.T) {
	t.Run("without image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.MenuItem) error {
				assert.Empty(t, m.Image)
				assert.True(t, m.Available)

				return nil
			})

		res, err := f.svc.Create(context.Background(), dto.MenuItemRequest{Name: "Tea", Category: "beverages", Price: 2})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "Tea", res.Name)
	})

	t.Run("with image", func(t *testing.T) {
		f := newFixture(t)

		f.s3.EXPECT().UploadFile(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any()).Return("https://cdn/menu_item/dish.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), dto.MenuItemRequest{Name: "Steak", Category: "dinner", Price: 30, Image: imageHeader(t)})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/menu_item/dish.png", res.Image)
	})

	t.Run("failed insert removes the upload", func(t *testing.T) {
		f := newFixture(t)

		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/menu_item/dish.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/menu_item/dish.png").Return(nil)

		_, err := f.svc.Create(context.Background(), dto.MenuItemRequest{Name: "Steak", Category: "dinner", Price: 30, Image: imageHeader(t)})

		assert.Error(t, err)
	})
}

func TestMenuService_Update(t *testing.T) {
	current := model.MenuItem{ID: "m-1", Name: "Tea", Image: "https://cdn/menu_item/old.png"}

	t.Run("replaces the image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/menu_item/new.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "https://cdn/menu_item/new.png", fields[model.FieldImage])

				return nil
			})
		f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/menu_item/old.png").Return(nil)

		err := f.svc.Update(context.Background(), dto.MenuItemRequest{Name: "Tea", Category: "beverages", Price: 3, Image: imageHeader(t)}, "m-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.MenuItem{}, nil)

		err := f.svc.Update(context.Background(), dto.MenuItemRequest{}, "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestMenuService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.MenuItem{ID: "m-1"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := f.svc.Delete(context.Background(), "m-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}
