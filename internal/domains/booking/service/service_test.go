package service_test

import (
	"bytes"
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	bookingMocks "hotelops/internal/domains/booking/mocks"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/service"
	roomMocks "hotelops/internal/domains/room/mocks"
	roomModel "hotelops/internal/domains/room/model"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.rooms, cfg, f.cache, mocks.NewOtel(), f.publisher)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

var suite = roomModel.Room{ID: "r-1", RoomNumber: "101", RoomType: "suite", Price: 150, Capacity: 3}

func bookingRequest() dto.BookingRequest {
	return dto.BookingRequest{
		GuestName:    "Ada Lovelace",
		Email:        "Ada@Example.com",
		Phone:        "+441234",
		RoomNumber:   "101",
		CheckInDate:  "2026-03-01",
		CheckOutDate: "2026-03-04",
		Adults:       2,
		Children:     1,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *dto.BookingRequest)
		setupMock func(f fixture)
		wantCode  int
		wantField string
	}{
		{
			name: "prices the stay from the room rate",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), "101", gomock.Any(), gomock.Any(), "").Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Booking) error {
						assert.Equal(t, 3, m.Nights)
						assert.Equal(t, 450.0, m.TotalPrice)
						assert.Equal(t, "ada@example.com", m.Email)
						assert.Equal(t, model.StatusConfirmed, m.Status)

						return nil
					})
			},
		},
		{
			name: "check-out before check-in",
			mutate: func(req *dto.BookingRequest) {
				req.CheckOutDate = "2026-03-01"
			},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
			wantField: model.FieldCheckOutDate,
		},
		{
			name: "unknown room",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode:  http.StatusBadRequest,
			wantField: model.FieldRoomNumber,
		},
		{
			name: "party larger than the room",
			mutate: func(req *dto.BookingRequest) {
				req.Adults = 3
			},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
			},
			wantCode:  http.StatusBadRequest,
			wantField: model.FieldAdults,
		},
		{
			name: "overlapping booking",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), "101", gomock.Any(), gomock.Any(), "").Return(true, nil)
			},
			wantCode:  http.StatusConflict,
			wantField: model.FieldCheckInDate,
		},
		{
			name: "concurrent booking wins the race at insert",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), "101", gomock.Any(), gomock.Any(), "").Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.ConflictField(model.FieldCheckInDate, "Check in date overlaps an existing booking"))
			},
			wantCode:  http.StatusConflict,
			wantField: model.FieldCheckInDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := bookingRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			res, err := f.svc.Create(context.Background(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Contains(t, failure.GetFields(err), tt.wantField)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "2026-03-01", res.CheckInDate)
			assert.Equal(t, 450.0, res.TotalPrice)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	t.Run("excludes itself from the overlap check and keeps the stored status", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).
			Return(model.Booking{ID: "b-1", Status: model.StatusCheckedIn}, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
		f.repo.EXPECT().Overlapping(gomock.Any(), "101", gomock.Any(), gomock.Any(), "b-1").Return(false, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 3, fields[model.FieldNights])
				assert.Equal(t, 450.0, fields[model.FieldTotalPrice])
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})

		err := f.svc.Update(context.Background(), bookingRequest(), "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("cancelling skips the overlap check", func(t *testing.T) {
		f := newFixture(t)

		req := bookingRequest()
		req.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).
			Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed}, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.Update(context.Background(), req, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("editing a cancelled booking stays out of the overlap check", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).
			Return(model.Booking{ID: "b-1", Status: model.StatusCancelled}, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suite, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})

		err := f.svc.Update(context.Background(), bookingRequest(), "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).Return(model.Booking{}, nil)

		err := f.svc.Update(context.Background(), bookingRequest(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Delete(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(21, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "b-1", RoomNumber: "101"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Bookings, 1)
}

func TestBookingService_Export(t *testing.T) {
	t.Run("renders one row per booking", func(t *testing.T) {
		f := newFixture(t)

		checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)
				assert.Zero(t, params.Limit)

				return []model.Booking{
					{GuestName: "Ada", RoomNumber: "101", CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 2), Nights: 2, TotalPrice: 300},
					{GuestName: "Alan", RoomNumber: "102", CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 1), Nights: 1, TotalPrice: 90, Status: model.StatusCancelled},
				}, nil
			})

		file, err := f.svc.Export(context.Background(), dto.ExportRequest{From: "2026-03-01", To: "2026-03-31"})
		require.NoError(t, err)

		assert.Equal(t, "bookings_2026-03-01_to_2026-03-31.xlsx", file.Name)
		assert.Equal(t, dto.ContentTypeXLSX, file.ContentType)

		book, err := excelize.OpenReader(bytes.NewReader(file.Content))
		require.NoError(t, err)

		rows, err := book.GetRows("Bookings")
		require.NoError(t, err)

		assert.Equal(t, "Guest", rows[1][0])
		assert.Equal(t, "Ada", rows[2][0])
		assert.Equal(t, "Alan", rows[3][0])
		assert.Equal(t, "300", rows[5][len(rows[5])-1])
	})

	t.Run("inverted range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Export(context.Background(), dto.ExportRequest{From: "2026-03-31", To: "2026-03-01"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
