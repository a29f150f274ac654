package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	feedbackMocks "hotelops/internal/domains/feedback/mocks"
	"hotelops/internal/domains/feedback/model"
	"hotelops/internal/domains/feedback/model/dto"
	"hotelops/internal/domains/feedback/service"
	cacheMocks "hotelops/shared/cache/mocks"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *feedbackMocks.MockFeedback
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Feedback
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      feedbackMocks.NewMockFeedback(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.publisher)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestFeedbackService_Create(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m model.Feedback) error {
			assert.Equal(t, "guest@example.com", m.Email)
			assert.Equal(t, 4, m.Rating)

			return nil
		})

	res, err := f.svc.Create(context.Background(), dto.CreateFeedbackRequest{
		GuestName: "Guest", Email: " Guest@Example.com ", Rating: 4, Category: model.CategoryFood, Comments: "Nice",
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
}

func TestFeedbackService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "deletes existing feedback",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "f-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFeedbackService_Summary(t *testing.T) {
	t.Run("computed from rating counts on cache miss", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "feedback:summary", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().RatingCounts(gomock.Any()).
			Return([]model.RatingCount{{Rating: 5, Total: 3}, {Rating: 1, Total: 1}}, nil)

		res, err := f.svc.Summary(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 4, res.TotalFeedback)
		assert.InDelta(t, 4.0, res.AverageRating, 0.001)
		assert.Equal(t, 3, res.Ratings["5"])
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().RatingCounts(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.Summary(context.Background())

		assert.Error(t, err)
	})
}
