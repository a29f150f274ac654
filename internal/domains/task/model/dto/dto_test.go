package dto_test

import (
	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/model/dto"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateTaskRequest_Due(t *testing.T) {
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate string
		wantMsg string
	}{
		{name: "today is allowed", dueDate: "2026-05-10"},
		{name: "future", dueDate: "2026-06-01"},
		{name: "yesterday", dueDate: "2026-05-09", wantMsg: dto.MsgDueDatePast},
		{name: "not a date", dueDate: "10/05/2026", wantMsg: dto.MsgDueDateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateTaskRequest{DueDate: tt.dueDate}

			due, err := req.Due(today)

			if tt.wantMsg != "" {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, failure.GetFields(err)[model.FieldDueDate])

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.dueDate, timezone.FormatDate(due))
		})
	}
}

func TestCreateTaskRequest_ToModel(t *testing.T) {
	due := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	req := dto.CreateTaskRequest{
		Title:      "  Restock minibar  ",
		EmployeeID: "e-1",
		Priority:   model.PriorityHigh,
	}

	task := req.ToModel("admin", due)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Restock minibar", task.Title)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, due, task.DueDate)
	assert.Equal(t, "admin", task.CreatedBy)

	req.Status = model.StatusInProgress
	assert.Equal(t, model.StatusInProgress, req.ToModel("admin", due).Status)
}

func TestUpdateTaskRequest_ToFields(t *testing.T) {
	status := model.StatusCompleted
	dueDate := "2026-07-01"
	badDate := "July 1st"

	t.Run("only sent fields", func(t *testing.T) {
		req := dto.UpdateTaskRequest{Status: &status, DueDate: &dueDate}

		fields, err := req.ToFields("admin")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), fields[model.FieldDueDate])
		assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
		assert.NotContains(t, fields, model.FieldTitle)
		assert.NotContains(t, fields, model.FieldEmployeeID)
	})

	t.Run("invalid due date", func(t *testing.T) {
		req := dto.UpdateTaskRequest{DueDate: &badDate}

		_, err := req.ToFields("admin")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, (&dto.UpdateTaskRequest{}).Empty())
		assert.False(t, (&dto.UpdateTaskRequest{Status: &status}).Empty())
	})
}
