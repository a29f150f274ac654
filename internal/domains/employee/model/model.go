package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
	"time"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldDepartmentID = "department_id"
	FieldPosition     = "position"
	FieldStatus       = "status"
	FieldHireDate     = "hire_date"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var SortableFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPosition, FieldHireDate, constant.FieldCreatedAt}

type Employee struct {
	ID             string     `db:"id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Email          string     `db:"email"`
	Phone          string     `db:"phone"`
	DepartmentID   string     `db:"department_id"`
	DepartmentName string     `column:"name"      db:"department_name" table:"departments"`
	Position       string     `db:"position"`
	Status         string     `db:"status"`
	HireDate       *time.Time `db:"hire_date"`
	model.Metadata
}

func (Employee) GetJoinQuery() string {
	return "LEFT JOIN departments ON departments.id = employees.department_id"
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}

	return e.FirstName + " " + e.LastName
}
