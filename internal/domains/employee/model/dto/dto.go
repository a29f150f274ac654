package dto

import (
	"hotelops/internal/domains/employee/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name"    validate:"required,max=100"`
	LastName     string `json:"last_name"     validate:"required,max=100"`
	Email        string `json:"email"         validate:"required,email"`
	Phone        string `json:"phone"         validate:"omitempty,max=30"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	Position     string `json:"position"      validate:"required,max=100"`
	Status       string `json:"status"        validate:"omitempty,oneof=active inactive"`
	HireDate     string `json:"hire_date"     validate:"omitempty,dateformat"`
}

func (c *CreateEmployeeRequest) ToModel(user string) model.Employee {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusActive
	}

	return model.Employee{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(c.FirstName),
		LastName:     strings.TrimSpace(c.LastName),
		Email:        strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:        strings.TrimSpace(c.Phone),
		DepartmentID: c.DepartmentID,
		Position:     strings.TrimSpace(c.Position),
		Status:       status,
		HireDate:     parseHireDate(c.HireDate),
		Metadata:     gModel.NewMetadata(user),
	}
}

type UpdateEmployeeRequest struct {
	FirstName    string `db:"first_name"    json:"first_name"    validate:"required,max=100"`
	LastName     string `db:"last_name"     json:"last_name"     validate:"required,max=100"`
	Email        string `db:"email"         json:"email"         validate:"required,email"`
	Phone        string `db:"phone"         json:"phone"         validate:"omitempty,max=30"`
	DepartmentID string `db:"department_id" json:"department_id" validate:"required,uuid"`
	Position     string `db:"position"      json:"position"      validate:"required,max=100"`
	Status       string `db:"status"        json:"status"        validate:"required,oneof=active inactive"`
	HireDate     string `json:"hire_date"   validate:"omitempty,dateformat"`
}

// ToFields returns the columns replaced by a PUT.
func (u *UpdateEmployeeRequest) ToFields(user string) map[string]any {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	fields := shared.TransformFields(u, user)
	fields[model.FieldHireDate] = parseHireDate(u.HireDate)

	return fields
}

func parseHireDate(value string) *time.Time {
	if value == constant.Empty {
		return nil
	}

	hireDate, err := timezone.ParseDate(value)
	if err != nil {
		return nil
	}

	return &hireDate
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Position       string `json:"position"`
	Status         string `json:"status"`
	HireDate       string `json:"hire_date,omitempty"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Name = model.FullName()
	r.Email = model.Email
	r.Phone = model.Phone
	r.DepartmentID = model.DepartmentID
	r.DepartmentName = model.DepartmentName
	r.Position = model.Position
	r.Status = model.Status

	if model.HireDate != nil {
		r.HireDate = timezone.FormatDate(*model.HireDate)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, m := range models {
		r.Employees[i].FromModel(m)
	}
}
