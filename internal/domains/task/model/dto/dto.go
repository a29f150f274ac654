package dto

import (
	employeeModel "hotelops/internal/domains/employee/model"
	"hotelops/internal/domains/task/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MsgDueDateInvalid = "Due date must be a date in YYYY-MM-DD format"
	MsgDueDatePast    = "Due date cannot be in the past"
)

type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	EmployeeID  string `json:"employee_id" validate:"required,uuid"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high urgent"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     string `json:"due_date"    validate:"required,dateformat"`
}

// Due parses the due date and rejects dates before today.
func (c *CreateTaskRequest) Due(today time.Time) (time.Time, error) {
	due, err := timezone.ParseDate(c.DueDate)
	if err != nil {
		return due, failure.FieldError(model.FieldDueDate, MsgDueDateInvalid)
	}

	if due.Before(today) {
		return due, failure.FieldError(model.FieldDueDate, MsgDueDatePast)
	}

	return due, nil
}

func (c *CreateTaskRequest) ToModel(user string, due time.Time) model.Task {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusPending
	}

	return model.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(c.Title),
		Description: strings.TrimSpace(c.Description),
		EmployeeID:  c.EmployeeID,
		Priority:    c.Priority,
		Status:      status,
		DueDate:     due,
		Metadata:    gModel.NewMetadata(user),
	}
}

// UpdateTaskRequest is a partial update; omitted fields keep their value.
type UpdateTaskRequest struct {
	Title       *string `db:"title"       json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=1000"`
	EmployeeID  *string `db:"employee_id" json:"employee_id" validate:"omitempty,uuid"`
	Priority    *string `db:"priority"    json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `db:"status"      json:"status"      validate:"omitempty,oneof=pending in_progress completed overdue"`
	DueDate     *string `db:"-"           json:"due_date"    validate:"omitempty,dateformat"`
}

func (u *UpdateTaskRequest) Empty() bool {
	return *u == UpdateTaskRequest{}
}

func (u *UpdateTaskRequest) ToFields(user string) (map[string]any, error) {
	fields := shared.TransformFields(u, user)

	if u.DueDate != nil {
		due, err := timezone.ParseDate(*u.DueDate)
		if err != nil {
			return nil, failure.FieldError(model.FieldDueDate, MsgDueDateInvalid)
		}

		fields[model.FieldDueDate] = due
	}

	return fields, nil
}

type TaskResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	DueDate      string `json:"due_date"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.EmployeeID = model.EmployeeID
	r.EmployeeName = model.EmployeeName()
	r.Priority = model.Priority
	r.Status = model.Status
	r.DueDate = timezone.FormatDate(model.DueDate)
	r.Metadata.FromModel(model.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}

// TaskEmployeeResponse is an assignable employee.
type TaskEmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Position     string `json:"position"`
}

func TaskEmployeesFromModels(models []employeeModel.Employee) []TaskEmployeeResponse {
	res := make([]TaskEmployeeResponse, len(models))
	for i, mod := range models {
		res[i] = TaskEmployeeResponse{
			ID:           mod.ID,
			Name:         mod.FullName(),
			DepartmentID: mod.DepartmentID,
			Position:     mod.Position,
		}
	}

	return res
}

type OverduePayload struct {
	Count int64  `json:"count"`
	Date  string `json:"date"`
}
