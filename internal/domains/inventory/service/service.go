package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/metrics"
	"hotelops/infras/otel"
	"hotelops/internal/domains/inventory/model"
	"hotelops/internal/domains/inventory/model/dto"
	"hotelops/internal/domains/inventory/repository"
	supplierModel "hotelops/internal/domains/supplier/model"
	supplierRepository "hotelops/internal/domains/supplier/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInventory    = "inventory:get"
	cacheGetAllInventory = "inventory:get_all"
	cacheCountInventory  = "inventory:count"
)

type Inventory interface {
	Create(ctx context.Context, req dto.CreateInventoryRequest) (dto.InventoryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInventoryResponse, error)
	Get(ctx context.Context, id string) (dto.InventoryResponse, error)
	Update(ctx context.Context, req dto.UpdateInventoryRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Inventory
	suppliers supplierRepository.Supplier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Inventory, suppliers supplierRepository.Supplier, cfg *config.Config, cache cache.RedisCache,
	otel otel.Otel, publisher event.Publisher,
) Inventory {
	return &serviceImpl{
		repo:      repo,
		suppliers: suppliers,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInventoryRequest) (res dto.InventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureSupplier(ctx, req.SupplierID); err != nil {
		return res, err
	}

	user := shared.Actor(ctx)
	item := req.ToModel(user)

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create inventory item")

		return res, err
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, s.writeEvents(event.New(model.EntityName, event.ActionCreated, item.ID, user, res), item)...)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInventory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory items")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	items, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items")

		return res, err
	}

	res.FromModels(items, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInventory, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInventory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory")

		return res, fmt.Errorf("failed to get inventory: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("inventory item not found")
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInventoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inventory existence")

		return err
	}

	if !exist {
		return failure.NotFound("inventory item not found")
	}

	if err = s.ensureSupplier(ctx, req.SupplierID); err != nil {
		return err
	}

	fields := req.ToFields(user)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inventory")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		updated := model.InventoryItem{
			ID:            id,
			ItemName:      req.ItemName,
			ItemCode:      req.ItemCode,
			Quantity:      *req.Quantity,
			MinStockLevel: *req.MinStockLevel,
		}

		s.invalidate(c, id)
		s.publish(c, s.writeEvents(event.New(model.EntityName, event.ActionUpdated, id, user, req), updated)...)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inventory existence")

		return err
	}

	if !exist {
		return failure.NotFound("inventory item not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(c), nil))
	}()

	return nil
}

func (s *serviceImpl) ensureSupplier(ctx context.Context, supplierID string) error {
	if supplierID == constant.Empty {
		return nil
	}

	exist, err := s.suppliers.Exist(ctx, shared.FilterByID(supplierID, supplierModel.FieldID, supplierModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check supplier existence")

		return err
	}

	if !exist {
		return failure.FieldError(model.FieldSupplierID, "Supplier does not exist")
	}

	return nil
}

// writeEvents appends a low stock alert when the written quantity has reached the minimum level.
func (s *serviceImpl) writeEvents(written event.Event, item model.InventoryItem) []event.Event {
	events := []event.Event{written}

	if !item.LowStock() {
		return events
	}

	metrics.IncLowStock()

	log.Warn().Str("item_code", item.ItemCode).Int("quantity", item.Quantity).Msg("inventory item is low on stock")

	return append(events, event.Named(event.NameInventoryLowStock, model.EntityName, item.ID, written.Actor, dto.LowStockPayload{
		ItemCode:      item.ItemCode,
		ItemName:      item.ItemName,
		Quantity:      item.Quantity,
		MinStockLevel: item.MinStockLevel,
	}))
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetInventory, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllInventory)
	shared.InvalidateCaches(ctx, s.cache, cacheCountInventory)
}

func (s *serviceImpl) publish(ctx context.Context, events ...event.Event) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		log.Error().Err(err).Msg("failed to publish inventory event")
	}
}
