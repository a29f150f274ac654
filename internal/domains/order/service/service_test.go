package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	menuMocks "hotelops/internal/domains/menu/mocks"
	menuModel "hotelops/internal/domains/menu/model"
	orderMocks "hotelops/internal/domains/order/mocks"
	"hotelops/internal/domains/order/model"
	"hotelops/internal/domains/order/model/dto"
	"hotelops/internal/domains/order/service"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *orderMocks.MockOrder
	menu      *menuMocks.MockMenu
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Order
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      orderMocks.NewMockOrder(ctrl),
		menu:      menuMocks.NewMockMenu(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.menu, cfg, f.cache, mocks.NewOtel(), f.publisher)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

var menu = []menuModel.MenuItem{
	{ID: "m-1", Name: "Pancakes", Price: 7.5, Available: true},
	{ID: "m-2", Name: "Coffee", Price: 3.33, Available: true},
	{ID: "m-3", Name: "Lobster", Price: 40, Available: false},
}

func orderRequest(senior bool, items ...dto.OrderItemRequest) dto.OrderRequest {
	return dto.OrderRequest{
		OrderType:     model.TypeRestaurant,
		TableNumber:   "T4",
		RoomNumber:    "101",
		CustomerName:  "Grace",
		SeniorCitizen: senior,
		Items:         items,
	}
}

func TestOrderService_Create(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.OrderRequest
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
		wantField    string
	}{
		{
			name:         "prices from the menu",
			req:          orderRequest(false, dto.OrderItemRequest{MenuItemID: "m-1", Quantity: 2}, dto.OrderItemRequest{MenuItemID: "m-2", Quantity: 3}),
			wantSubtotal: 24.99,
			wantTotal:    24.99,
		},
		{
			name:         "senior citizen pays eighty percent",
			req:          orderRequest(true, dto.OrderItemRequest{MenuItemID: "m-1", Quantity: 2}, dto.OrderItemRequest{MenuItemID: "m-2", Quantity: 3}),
			wantSubtotal: 24.99,
			wantDiscount: 5,
			wantTotal:    19.99,
		},
		{
			name:      "unknown menu item",
			req:       orderRequest(false, dto.OrderItemRequest{MenuItemID: "m-404", Quantity: 1}),
			wantField: model.FieldItems,
		},
		{
			name:      "unavailable menu item",
			req:       orderRequest(false, dto.OrderItemRequest{MenuItemID: "m-3", Quantity: 1}),
			wantField: model.FieldItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.menu.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(menu, nil)

			if tt.wantField == "" {
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order model.Order, items []model.OrderItem) error {
						assert.Equal(t, "T4", order.TableNumber)
						assert.Empty(t, order.RoomNumber)
						assert.Equal(t, model.StatusPending, order.Status)

						for _, item := range items {
							assert.Equal(t, order.ID, item.OrderID)
							assert.NotEmpty(t, item.ID)
						}

						return nil
					})
			}

			res, err := f.svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantField != "" {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Contains(t, failure.GetFields(err), tt.wantField)

				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.wantSubtotal, res.Subtotal, 0.0001)
			assert.InDelta(t, tt.wantDiscount, res.Discount, 0.0001)
			assert.InDelta(t, tt.wantTotal, res.Total, 0.0001)
			assert.Len(t, res.Items, 2)
			assert.InDelta(t, 15.0, res.Items[0].LineTotal, 0.0001)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   model.Order
		status    string
		wantCode  int
		wantEvent bool
	}{
		{
			name:      "pending to preparing",
			current:   model.Order{ID: "o-1", Status: model.StatusPending},
			status:    model.StatusPreparing,
			wantEvent: true,
		},
		{
			name:     "served cannot be cancelled",
			current:  model.Order{ID: "o-1", Status: model.StatusServed},
			status:   model.StatusCancelled,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found",
			current:  model.Order{},
			status:   model.StatusPreparing,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).Return(tt.current, nil)

			if tt.wantEvent {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.status, fields[model.FieldStatus])

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.Event) error {
						assert.Equal(t, event.NameOrderStatus, events[0].Name)
						assert.Equal(t, dto.StatusPayload{From: model.StatusPending, To: model.StatusPreparing}, events[0].Payload)

						return nil
					})
			}

			err := f.svc.UpdateStatus(context.Background(), dto.StatusRequest{Status: tt.status}, "o-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Order{{ID: "o-1"}, {ID: "o-2"}}, nil)
	f.repo.EXPECT().Items(gomock.Any(), "o-1", "o-2").
		Return([]model.OrderItem{
			{OrderID: "o-1", Name: "Tea"},
			{OrderID: "o-2", Name: "Soup"},
			{OrderID: "o-1", Name: "Cake"},
		}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Orders[0].Items, 2)
	assert.Len(t, res.Orders[1].Items, 1)
}
