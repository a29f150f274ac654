package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	departmentMocks "hotelops/internal/domains/department/mocks"
	employeeMocks "hotelops/internal/domains/employee/mocks"
	"hotelops/internal/domains/employee/model"
	"hotelops/internal/domains/employee/model/dto"
	"hotelops/internal/domains/employee/service"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo        *employeeMocks.MockEmployee
	departments *departmentMocks.MockDepartment
	cache       *cacheMocks.MockRedisCache
	svc         service.Employee
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        employeeMocks.NewMockEmployee(ctrl),
		departments: departmentMocks.NewMockDepartment(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.departments, cfg, f.cache, mocks.NewOtel(), publisher)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func validCreateRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Reyes",
		Email:        " Ana.Reyes@Hotel.test ",
		DepartmentID: "7b0e4f57-5a38-4a43-9d0c-0b5d2e4d1f10",
		Position:     "Receptionist",
		HireDate:     "2024-02-01",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantField string
	}{
		{
			name: "successful creation defaults to active",
			setupMock: func(f fixture) {
				f.departments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Employee) error {
						assert.Equal(t, model.StatusActive, m.Status)
						assert.Equal(t, "ana.reyes@hotel.test", m.Email)
						assert.NotNil(t, m.HireDate)

						return nil
					})
			},
		},
		{
			name: "unknown department",
			setupMock: func(f fixture) {
				f.departments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode:  http.StatusBadRequest,
			wantField: "department_id",
		},
		{
			name: "duplicate email",
			setupMock: func(f fixture) {
				f.departments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.ConflictField("email", "Email already exists"))
			},
			wantCode:  http.StatusConflict,
			wantField: "email",
		},
		{
			name: "department lookup failure",
			setupMock: func(f fixture) {
				f.departments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), validCreateRequest())

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantField != "" {
					assert.Contains(t, failure.GetFields(err), tt.wantField)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Ana Reyes", res.Name)
			assert.Equal(t, "2024-02-01", res.HireDate)
		})
	}
}

func TestEmployeeService_Update(t *testing.T) {
	req := dto.UpdateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Reyes",
		Email:        "ana@hotel.test",
		DepartmentID: "7b0e4f57-5a38-4a43-9d0c-0b5d2e4d1f10",
		Position:     "Supervisor",
		Status:       model.StatusInactive,
	}

	t.Run("replaces all columns", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.departments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Supervisor", fields["position"])
				assert.Equal(t, model.StatusInactive, fields["status"])
				assert.Contains(t, fields, "hire_date")

				return nil
			})

		err := f.svc.Update(context.Background(), req, "e-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing employee", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), req, "e-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestEmployeeService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "employee:get:e-1", gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Employee{
		ID:             "e-1",
		FirstName:      "Ana",
		DepartmentName: "Front Office",
	}, nil)

	res, err := f.svc.Get(context.Background(), "e-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "Ana", res.Name)
	assert.Equal(t, "Front Office", res.DepartmentName)
	assert.Empty(t, res.HireDate)
}

func TestEmployeeService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).
		Return(failure.Conflict("employee is still referenced by other records"))

	err := f.svc.Delete(context.Background(), "e-1")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}
