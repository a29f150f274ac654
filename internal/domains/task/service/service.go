package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/metrics"
	"hotelops/infras/otel"
	employeeModel "hotelops/internal/domains/employee/model"
	employeeRepository "hotelops/internal/domains/employee/repository"
	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/model/dto"
	"hotelops/internal/domains/task/repository"
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
	cacheGetAllTask = "task:get_all"
	cacheCountTask  = "task:count"
)

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	Delete(ctx context.Context, id string) error
	Employees(ctx context.Context) ([]dto.TaskEmployeeResponse, error)
	MarkOverdue(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo      repository.Task
	employees employeeRepository.Employee
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Task, employees employeeRepository.Employee, cfg *config.Config, cache cache.RedisCache,
	otel otel.Otel, publisher event.Publisher,
) Task {
	return &serviceImpl{
		repo:      repo,
		employees: employees,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func activeEmployeeFilter() gDto.Filter {
	return gDto.Filter{
		Field:    employeeModel.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    employeeModel.StatusActive,
		Table:    employeeModel.TableName,
	}
}

// checkEmployee rejects unknown and inactive assignees.
func (s *serviceImpl) checkEmployee(ctx context.Context, employeeID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: employeeModel.FieldID, Operator: gDto.FilterOperatorEq, Value: employeeID, Table: employeeModel.TableName},
			activeEmployeeFilter(),
		},
	}

	exist, err := s.employees.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee")

		return fmt.Errorf("failed to check employee: %w", err)
	}

	if !exist {
		return failure.FieldError(model.FieldEmployeeID, "Employee does not exist or is inactive")
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := shared.Actor(ctx)

	due, err := req.Due(timezone.Today())
	if err != nil {
		return res, err
	}

	if err = s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return res, err
	}

	task := req.ToModel(user, due)

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create task")

		return res, err
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionCreated, task.ID, user, res))
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tasks")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTask, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tasks")

		return res, fmt.Errorf("failed to count tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save task count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user := shared.Actor(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check task existence")

		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if !exist {
		return failure.NotFound("task not found")
	}

	fields, err := req.ToFields(user)
	if err != nil {
		return err
	}

	if req.EmployeeID != nil {
		if err = s.checkEmployee(ctx, *req.EmployeeID); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update task")

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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if task exists")

		return fmt.Errorf("failed to check if task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("task not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete task")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
		s.publish(c, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(c), nil))
	}()

	return nil
}

// Employees lists the active employees tasks can be assigned to.
func (s *serviceImpl) Employees(ctx context.Context) (res []dto.TaskEmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Employees")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  employeeModel.TableName + "." + employeeModel.FieldFirstName,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{activeEmployeeFilter()},
	}

	employees, err := s.employees.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get task employees")

		return res, fmt.Errorf("failed to get task employees: %w", err)
	}

	return dto.TaskEmployeesFromModels(employees), nil
}

// MarkOverdue moves open tasks past their due date to overdue.
func (s *serviceImpl) MarkOverdue(ctx context.Context) (count int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.MarkOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Today()

	count, err = s.repo.MarkOverdue(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark overdue tasks")

		return 0, fmt.Errorf("failed to mark overdue tasks: %w", err)
	}

	if count == 0 {
		return 0, nil
	}

	metrics.AddTasksMarkedOverdue(count)
	log.Info().Int64("count", count).Msg("tasks marked overdue")

	s.invalidateLists(ctx)
	s.publish(ctx, event.Named(event.NameTaskOverdue, model.EntityName, constant.Empty, constant.ContextSystem,
		dto.OverduePayload{Count: count, Date: timezone.FormatDate(today)}))

	return count, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllTask)
	shared.InvalidateCaches(ctx, s.cache, cacheCountTask)
}

func (s *serviceImpl) publish(ctx context.Context, events ...event.Event) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		log.Error().Err(err).Msg("failed to publish task event")
	}
}
