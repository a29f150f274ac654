package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/metrics"
	"hotelops/infras/otel"
	menuModel "hotelops/internal/domains/menu/model"
	menuRepo "hotelops/internal/domains/menu/repository"
	"hotelops/internal/domains/order/model"
	"hotelops/internal/domains/order/model/dto"
	"hotelops/internal/domains/order/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetOrder    = "order:get"
	cacheGetAllOrder = "order:get_all"
	cacheCountOrder  = "order:count"
)

type Order interface {
	Create(ctx context.Context, req dto.OrderRequest) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, req dto.StatusRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Order
	menuRepo  menuRepo.Menu
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Order, menuRepo menuRepo.Menu, cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
	publisher event.Publisher,
) Order {
	return &serviceImpl{
		repo:      repo,
		menuRepo:  menuRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.OrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)

	lines, err := s.price(ctx, req)
	if err != nil {
		return res, err
	}

	order, items := req.ToModel(user, lines)

	if err = s.repo.Create(ctx, order, items); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, err
	}

	metrics.IncOrderCreated(order.OrderType, order.Total)

	res.FromModel(order, items)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionCreated, order.ID, user, res))
	}()

	return res, nil
}

// price resolves every cart line against the menu. Unknown and unavailable dishes are reported
// on the items field.
func (s *serviceImpl) price(ctx context.Context, req dto.OrderRequest) ([]model.OrderItem, error) {
	ids := req.MenuItemIDs()

	menu, err := s.menuRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: menuModel.FieldID, Operator: gDto.FilterOperatorIn, Value: ids, Table: menuModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	byID := make(map[string]menuModel.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	lines := make([]model.OrderItem, 0, len(req.Items))

	for _, requested := range req.Items {
		item, ok := byID[requested.MenuItemID]
		if !ok {
			return nil, failure.FieldError(model.FieldItems, fmt.Sprintf("Menu item %s does not exist", requested.MenuItemID))
		}

		if !item.Available {
			return nil, failure.FieldError(model.FieldItems, item.Name+" is not available")
		}

		lines = append(lines, model.Line(constant.Empty, item.ID, item.Name, item.Price, requested.Quantity))
	}

	return lines, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrder, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for orders")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := s.repo.Items(ctx, ids...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModels(orders, items, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOrder, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save order count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOrder, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound("order not found")
	}

	items, err := s.repo.Items(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModel(order, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save order to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves an order along pending, preparing, served, completed. Pending and preparing
// orders may also be cancelled.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.StatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	order, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("order not found")
	}

	if !model.CanTransition(order.Status, req.Status) {
		return failure.FieldError(model.FieldStatus, fmt.Sprintf("Order cannot move from %s to %s", order.Status, req.Status))
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update order status")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, event.Named(event.NameOrderStatus, model.EntityName, id, user, dto.StatusPayload{From: order.Status, To: req.Status}))
	}()

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetOrder, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete order cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllOrder)
	shared.InvalidateCaches(ctx, s.cache, cacheCountOrder)
}

func (s *serviceImpl) publish(ctx context.Context, events ...event.Event) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		log.Error().Err(err).Msg("failed to publish order event")
	}
}
