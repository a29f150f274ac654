package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
	"time"
)

const (
	TableName  = "schedules"
	EntityName = "schedule"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
	FieldShiftDate  = "shift_date"
	FieldShiftStart = "shift_start"
	FieldShiftEnd   = "shift_end"
	FieldShiftType  = "shift_type"
	FieldNotes      = "notes"

	ParamFrom = "from"
	ParamTo   = "to"
)

const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
)

var SortableFields = []string{FieldShiftDate, FieldShiftStart, FieldShiftType, constant.FieldCreatedAt}

type Schedule struct {
	ID                string    `db:"id"`
	EmployeeID        string    `db:"employee_id"`
	EmployeeFirstName string    `column:"first_name" db:"employee_first_name" table:"employees"`
	EmployeeLastName  string    `column:"last_name"  db:"employee_last_name"  table:"employees"`
	ShiftDate         time.Time `db:"shift_date"`
	ShiftStart        string    `db:"shift_start"`
	ShiftEnd          string    `db:"shift_end"`
	ShiftType         string    `db:"shift_type"`
	Notes             string    `db:"notes"`
	model.Metadata
}

func (Schedule) GetJoinQuery() string {
	return "LEFT JOIN employees ON employees.id = schedules.employee_id"
}

func (s Schedule) EmployeeName() string {
	if s.EmployeeLastName == "" {
		return s.EmployeeFirstName
	}

	return s.EmployeeFirstName + " " + s.EmployeeLastName
}

// ValidShift reports whether a shift ends after it starts. Night shifts may cross midnight.
func ValidShift(shiftType string, start, end time.Time) bool {
	if end.After(start) {
		return true
	}

	return shiftType == ShiftNight && end.Before(start)
}
