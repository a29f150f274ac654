package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	employeeMocks "hotelops/internal/domains/employee/mocks"
	employeeModel "hotelops/internal/domains/employee/model"
	taskMocks "hotelops/internal/domains/task/mocks"
	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/model/dto"
	"hotelops/internal/domains/task/service"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *taskMocks.MockTask
	employees *employeeMocks.MockEmployee
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Task
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      taskMocks.NewMockTask(ctrl),
		employees: employeeMocks.NewMockEmployee(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.employees, cfg, f.cache, mocks.NewOtel(), f.publisher)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestTaskService_Create(t *testing.T) {
	tomorrow := timezone.FormatDate(timezone.Today().AddDate(0, 0, 1))
	yesterday := timezone.FormatDate(timezone.Today().AddDate(0, 0, -1))

	request := func(due string) dto.CreateTaskRequest {
		return dto.CreateTaskRequest{
			Title:      "Deep clean suite 401",
			EmployeeID: "0b6f2c1e-3d4a-4f5b-8c9d-0e1f2a3b4c5d",
			Priority:   model.PriorityUrgent,
			DueDate:    due,
		}
	}

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		setupMock func(f fixture)
		wantCode  int
		wantField string
	}{
		{
			name: "pending by default",
			req:  request(tomorrow),
			setupMock: func(f fixture) {
				f.employees.EXPECT().Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, employeeModel.StatusActive, args[employeeModel.FieldStatus])

						return true, nil
					})
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Task) error {
						assert.Equal(t, model.StatusPending, m.Status)
						assert.Equal(t, tomorrow, timezone.FormatDate(m.DueDate))

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "due date in the past",
			req:       request(yesterday),
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
			wantField: model.FieldDueDate,
		},
		{
			name: "inactive employee",
			req:  request(tomorrow),
			setupMock: func(f fixture) {
				f.employees.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode:  http.StatusBadRequest,
			wantField: model.FieldEmployeeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Contains(t, failure.GetFields(err), tt.wantField)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	status := model.StatusCompleted
	employeeID := "0b6f2c1e-3d4a-4f5b-8c9d-0e1f2a3b4c5d"

	tests := []struct {
		name      string
		req       dto.UpdateTaskRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty body",
			req:       dto.UpdateTaskRequest{},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateTaskRequest{Status: &status},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "complete task",
			req:  dto.UpdateTaskRequest{Status: &status},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "reassign to inactive employee",
			req:  dto.UpdateTaskRequest{EmployeeID: &employeeID},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.employees.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "t-1")
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Delete(context.Background(), "t-404")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestTaskService_Employees(t *testing.T) {
	f := newFixture(t)

	f.employees.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]employeeModel.Employee, error) {
			assert.Equal(t, 0, params.Limit)

			return []employeeModel.Employee{
				{ID: "e-1", FirstName: "Ana", LastName: "Cruz", DepartmentID: "d-1", Position: "Housekeeper"},
				{ID: "e-2", FirstName: "Ben", DepartmentID: "d-2", Position: "Cook"},
			}, nil
		})

	res, err := f.svc.Employees(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []dto.TaskEmployeeResponse{
		{ID: "e-1", Name: "Ana Cruz", DepartmentID: "d-1", Position: "Housekeeper"},
		{ID: "e-2", Name: "Ben", DepartmentID: "d-2", Position: "Cook"},
	}, res)
}

func TestTaskService_MarkOverdue(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		want      int64
		wantErr   bool
	}{
		{
			name: "publishes when tasks changed",
			setupMock: func(f fixture) {
				f.repo.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.Event) error {
						assert.Len(t, events, 1)
						assert.Equal(t, event.NameTaskOverdue, events[0].Name)
						assert.Equal(t, int64(3), events[0].Payload.(dto.OverduePayload).Count)

						return nil
					})
			},
			want: 3,
		},
		{
			name: "nothing to do",
			setupMock: func(f fixture) {
				f.repo.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
		},
		{
			name: "database error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			count, err := f.svc.MarkOverdue(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}
