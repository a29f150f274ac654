package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
	"time"
)

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldEmployeeID  = "employee_id"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldDueDate     = "due_date"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOverdue    = "overdue"
)

// OpenStatuses are the statuses the overdue sweep may move to overdue.
var OpenStatuses = []string{StatusPending, StatusInProgress}

var SortableFields = []string{FieldTitle, FieldPriority, FieldStatus, FieldDueDate, constant.FieldCreatedAt}

type Task struct {
	ID                string    `db:"id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	EmployeeID        string    `db:"employee_id"`
	EmployeeFirstName string    `column:"first_name" db:"employee_first_name" table:"employees"`
	EmployeeLastName  string    `column:"last_name"  db:"employee_last_name"  table:"employees"`
	Priority          string    `db:"priority"`
	Status            string    `db:"status"`
	DueDate           time.Time `db:"due_date"`
	model.Metadata
}

func (Task) GetJoinQuery() string {
	return "LEFT JOIN employees ON employees.id = tasks.employee_id"
}

func (t Task) EmployeeName() string {
	if t.EmployeeLastName == "" {
		return t.EmployeeFirstName
	}

	return t.EmployeeFirstName + " " + t.EmployeeLastName
}
