package service_test

import (
	"context"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	inventoryMocks "hotelops/internal/domains/inventory/mocks"
	"hotelops/internal/domains/inventory/model"
	"hotelops/internal/domains/inventory/model/dto"
	"hotelops/internal/domains/inventory/service"
	supplierMocks "hotelops/internal/domains/supplier/mocks"
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

func intPtr(v int) *int {
	return &v
}

func TestInventoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateInventoryRequest
		setupMock func(repo *inventoryMocks.MockInventory, suppliers *supplierMocks.MockSupplier, publisher *eventMocks.MockPublisher)
		wantCode  int
		wantField string
	}{
		{
			name: "stocked item publishes created event only",
			req: dto.CreateInventoryRequest{
				ItemName: "Bath towel", ItemCode: "tw-01", Category: "linen",
				Quantity: intPtr(40), MinStockLevel: intPtr(10), Price: 12.499,
			},
			setupMock: func(repo *inventoryMocks.MockInventory, _ *supplierMocks.MockSupplier, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.InventoryItem) error {
						assert.Equal(t, "TW-01", m.ItemCode)
						assert.Equal(t, 12.5, m.Price)
						assert.Nil(t, m.SupplierID)

						return nil
					})
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.Event) error {
						assert.Equal(t, "inventory.created", events[0].Name)

						return nil
					})
			},
		},
		{
			name: "item at minimum level raises low stock",
			req: dto.CreateInventoryRequest{
				ItemName: "Shampoo", ItemCode: "SH-02", Category: "amenities",
				Quantity: intPtr(0), MinStockLevel: intPtr(0), Price: 2,
			},
			setupMock: func(repo *inventoryMocks.MockInventory, _ *supplierMocks.MockSupplier, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.Event) error {
						assert.Equal(t, event.NameInventoryLowStock, events[1].Name)
						assert.Equal(t, dto.LowStockPayload{ItemCode: "SH-02", ItemName: "Shampoo"}, events[1].Payload)

						return nil
					})
			},
		},
		{
			name: "unknown supplier",
			req: dto.CreateInventoryRequest{
				ItemName: "Soap", ItemCode: "SP-03", Category: "amenities",
				Quantity: intPtr(5), MinStockLevel: intPtr(1), Price: 1, SupplierID: "1c7e8a9a-5f8e-4bb0-9a63-2ad1f6d1b0a1",
			},
			setupMock: func(_ *inventoryMocks.MockInventory, suppliers *supplierMocks.MockSupplier, _ *eventMocks.MockPublisher) {
				suppliers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode:  http.StatusBadRequest,
			wantField: "supplier_id",
		},
		{
			name: "duplicate item code",
			req: dto.CreateInventoryRequest{
				ItemName: "Soap", ItemCode: "SP-03", Category: "amenities",
				Quantity: intPtr(5), MinStockLevel: intPtr(1), Price: 1,
			},
			setupMock: func(repo *inventoryMocks.MockInventory, _ *supplierMocks.MockSupplier, _ *eventMocks.MockPublisher) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.ConflictField("item_code", "Item code already exists"))
			},
			wantCode:  http.StatusConflict,
			wantField: "item_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventoryMocks.NewMockInventory(ctrl)
			suppliers := supplierMocks.NewMockSupplier(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			publisher := eventMocks.NewMockPublisher(ctrl)

			cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			tt.setupMock(repo, suppliers, publisher)

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(repo, suppliers, cfg, cache, mocks.NewOtel(), publisher)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Contains(t, failure.GetFields(err), tt.wantField)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, *tt.req.Quantity <= *tt.req.MinStockLevel, res.LowStock)
		})
	}
}

func TestInventoryService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventoryMocks.NewMockInventory(ctrl)
	suppliers := supplierMocks.NewMockSupplier(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)

	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, 3, fields["quantity"])
			assert.Equal(t, "LN-9", fields["item_code"])
			assert.Nil(t, fields["supplier_id"])

			return nil
		})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := service.New(repo, suppliers, &config.Config{}, cache, mocks.NewOtel(), publisher)

	err := svc.Update(context.Background(), dto.UpdateInventoryRequest{
		ItemName: "Linen", ItemCode: "ln-9", Category: "linen",
		Quantity: intPtr(3), MinStockLevel: intPtr(5), Price: 4,
	}, "i-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestInventoryItem_LowStock(t *testing.T) {
	assert.True(t, model.InventoryItem{Quantity: 2, MinStockLevel: 2}.LowStock())
	assert.True(t, model.InventoryItem{Quantity: 1, MinStockLevel: 2}.LowStock())
	assert.False(t, model.InventoryItem{Quantity: 3, MinStockLevel: 2}.LowStock())
}
