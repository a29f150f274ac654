package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/department/model"
	"hotelops/internal/domains/department/model/dto"
	"hotelops/internal/domains/department/repository"
	employeeModel "hotelops/internal/domains/employee/model"
	employeeRepository "hotelops/internal/domains/employee/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDepartment    = "department:get"
	cacheGetAllDepartment = "department:get_all"
	cacheCountDepartment  = "department:count"
)

type Department interface {
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (dto.DepartmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDepartmentsResponse, error)
	Get(ctx context.Context, id string) (dto.DepartmentResponse, error)
	Update(ctx context.Context, req dto.UpdateDepartmentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Department
	employees employeeRepository.Employee
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Department, employees employeeRepository.Employee, cfg *config.Config, cache cache.RedisCache,
	otel otel.Otel, publisher event.Publisher,
) Department {
	return &serviceImpl{
		repo:      repo,
		employees: employees,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDepartmentRequest) (res dto.DepartmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".department.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)
	department := req.ToModel(user)

	if err = s.repo.Insert(ctx, department); err != nil {
		log.Error().Err(err).Msg("failed to create department")

		return res, err
	}

	res.FromModel(department)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionCreated, department.ID, user, res))
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDepartmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".department.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDepartment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for departments")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	departments, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get departments")

		return res, err
	}

	res.FromModels(departments, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save departments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDepartment, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count departments")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save department count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DepartmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".department.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDepartment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	department, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get department")

		return res, fmt.Errorf("failed to get department: %w", err)
	}

	if department.ID == constant.Empty {
		return res, failure.NotFound("department not found")
	}

	res.FromModel(department)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save department to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDepartmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".department.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check department existence")

		return err
	}

	if !exist {
		return failure.NotFound("department not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update department")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, event.New(model.EntityName, event.ActionUpdated, id, user, req))
	}()

	return nil
}

// Delete refuses to remove a department that still has employees.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".department.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check department existence")

		return err
	}

	if !exist {
		return failure.NotFound("department not found")
	}

	hasEmployees, err := s.employees.Exist(ctx, shared.FilterByID(id, employeeModel.FieldDepartmentID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check department employees")

		return err
	}

	if hasEmployees {
		return failure.Conflict("department still has employees assigned")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete department")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(c), nil))
	}()

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetDepartment, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete department cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllDepartment)
	shared.InvalidateCaches(ctx, s.cache, cacheCountDepartment)
}

func (s *serviceImpl) publish(ctx context.Context, events ...event.Event) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		log.Error().Err(err).Msg("failed to publish department event")
	}
}
