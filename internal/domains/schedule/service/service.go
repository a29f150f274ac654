package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	employeeModel "hotelops/internal/domains/employee/model"
	employeeRepository "hotelops/internal/domains/employee/repository"
	"hotelops/internal/domains/schedule/model"
	"hotelops/internal/domains/schedule/model/dto"
	"hotelops/internal/domains/schedule/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSchedule = "schedule:get_all"
	cacheCountSchedule  = "schedule:count"
)

type Schedule interface {
	Create(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSchedulesResponse, error)
	Update(ctx context.Context, req dto.ScheduleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Schedule
	employees employeeRepository.Employee
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Schedule, employees employeeRepository.Employee, cfg *config.Config, cache cache.RedisCache,
	otel otel.Otel, publisher event.Publisher,
) Schedule {
	return &serviceImpl{
		repo:      repo,
		employees: employees,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)

	date, err := s.check(ctx, req, constant.Empty)
	if err != nil {
		return res, err
	}

	schedule := req.ToModel(user, date)

	if err = s.repo.Insert(ctx, schedule); err != nil {
		log.Error().Err(err).Msg("failed to create schedule")

		return res, err
	}

	res.FromModel(schedule)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionCreated, schedule.ID, user, res))
	}()

	return res, nil
}

// check validates the shift hours, the employee and the one-schedule-per-day rule.
func (s *serviceImpl) check(ctx context.Context, req dto.ScheduleRequest, excludeID string) (time.Time, error) {
	date, err := req.Date()
	if err != nil {
		return date, err
	}

	exist, err := s.employees.Exist(ctx, shared.FilterByID(req.EmployeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee existence")

		return date, fmt.Errorf("failed to check employee existence: %w", err)
	}

	if !exist {
		return date, failure.FieldError(model.FieldEmployeeID, "Employee does not exist")
	}

	duplicate, err := s.repo.Exist(ctx, repository.DuplicateFilter(req.EmployeeID, date, excludeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check schedule duplicate")

		return date, fmt.Errorf("failed to check schedule duplicate: %w", err)
	}

	if duplicate {
		return date, failure.ConflictField(model.FieldShiftDate, "Employee already has a schedule on this date")
	}

	return date, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSchedule, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedules")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSchedule, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count schedules")

		return res, fmt.Errorf("failed to count schedules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.ScheduleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check schedule existence")

		return fmt.Errorf("failed to check schedule existence: %w", err)
	}

	if !exist {
		return failure.NotFound("schedule not found")
	}

	date, err := s.check(ctx, req, id)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToFields(user, date), filter); err != nil {
		log.Error().Err(err).Msg("failed to update schedule")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionUpdated, id, user, nil))
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if schedule exists")

		return fmt.Errorf("failed to check if schedule exists: %w", err)
	}

	if !exist {
		return failure.NotFound("schedule not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete schedule")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(c), nil))
	}()

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllSchedule)
	shared.InvalidateCaches(ctx, s.cache, cacheCountSchedule)
}

func (s *serviceImpl) publish(ctx context.Context, events ...event.Event) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		log.Error().Err(err).Msg("failed to publish schedule event")
	}
}
