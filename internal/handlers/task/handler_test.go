package task_test

import (
	"context"
	"encoding/json"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/internal/domains/task/model/dto"
	taskMocks "hotelops/internal/domains/task/service/mocks"
	"hotelops/internal/handlers/task"
	"hotelops/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const employeeID = "7d0f3c52-4a8e-4f0e-9a8c-1f2d3e4b5a6c"

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func newRouter(t *testing.T) (*taskMocks.MockTask, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := taskMocks.NewMockTask(ctrl)

	handler := task.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_CreateTask(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *taskMocks.MockTask)
		wantCode   int
		wantFields []string
	}{
		{
			name: "created",
			body: `{"title":"Restock minibar","employeeId":"` + employeeID + `","priority":"high","dueDate":"2026-12-01"}`,
			setupMock: func(svc *taskMocks.MockTask) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error) {
						assert.Equal(t, "Restock minibar", req.Title)
						assert.Equal(t, employeeID, req.EmployeeID)
						assert.Equal(t, "2026-12-01", req.DueDate)

						return dto.TaskResponse{ID: "t-1", Title: req.Title, EmployeeID: req.EmployeeID, Priority: req.Priority, Status: "pending", DueDate: req.DueDate}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:       "missing and malformed fields",
			body:       `{"employee_id":"nope","priority":"high","due_date":"2026-12-01"}`,
			setupMock:  func(_ *taskMocks.MockTask) {},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"title", "employee_id"},
		},
		{
			name: "inactive employee",
			body: `{"title":"Fold towels","employee_id":"` + employeeID + `","priority":"low","due_date":"2026-12-01"}`,
			setupMock: func(svc *taskMocks.MockTask) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.TaskResponse{}, failure.FieldError("employee_id", "Employee does not exist or is inactive"))
			},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"employee_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantFields != nil {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

				for _, field := range tt.wantFields {
					assert.Contains(t, body.Errors, field)
				}

				return
			}

			var body struct {
				Data dto.TaskResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, "t-1", body.Data.ID)
			assert.Equal(t, "Restock minibar", body.Data.Title)
			assert.Equal(t, "pending", body.Data.Status)
		})
	}
}
