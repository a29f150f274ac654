package dto

import (
	"hotelops/internal/domains/schedule/model"
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

const MsgShiftEndBeforeStart = "Shift end must be after shift start"

// ScheduleRequest is the body of both create and full update.
type ScheduleRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	ShiftDate  string `json:"shift_date"  validate:"required,dateformat"`
	ShiftStart string `json:"shift_start" validate:"required,timeformat"`
	ShiftEnd   string `json:"shift_end"   validate:"required,timeformat"`
	ShiftType  string `json:"shift_type"  validate:"required,oneof=morning afternoon night"`
	Notes      string `json:"notes"       validate:"omitempty,max=500"`
}

// Date parses the shift date and checks the shift hours.
func (r *ScheduleRequest) Date() (time.Time, error) {
	date, err := timezone.ParseDate(r.ShiftDate)
	if err != nil {
		return date, failure.FieldError(model.FieldShiftDate, "Shift date must be a date in YYYY-MM-DD format")
	}

	start, err := time.Parse(constant.TimeOnlyFormat, r.ShiftStart)
	if err != nil {
		return date, failure.FieldError(model.FieldShiftStart, "Shift start must be a time in HH:MM format")
	}

	end, err := time.Parse(constant.TimeOnlyFormat, r.ShiftEnd)
	if err != nil {
		return date, failure.FieldError(model.FieldShiftEnd, "Shift end must be a time in HH:MM format")
	}

	if !model.ValidShift(r.ShiftType, start, end) {
		return date, failure.FieldError(model.FieldShiftEnd, MsgShiftEndBeforeStart)
	}

	return date, nil
}

func (r *ScheduleRequest) ToModel(user string, date time.Time) model.Schedule {
	return model.Schedule{
		ID:         uuid.NewString(),
		EmployeeID: r.EmployeeID,
		ShiftDate:  date,
		ShiftStart: r.ShiftStart,
		ShiftEnd:   r.ShiftEnd,
		ShiftType:  r.ShiftType,
		Notes:      strings.TrimSpace(r.Notes),
		Metadata:   gModel.NewMetadata(user),
	}
}

func (r *ScheduleRequest) ToFields(user string, date time.Time) map[string]any {
	return map[string]any{
		model.FieldEmployeeID:    r.EmployeeID,
		model.FieldShiftDate:     date,
		model.FieldShiftStart:    r.ShiftStart,
		model.FieldShiftEnd:      r.ShiftEnd,
		model.FieldShiftType:     r.ShiftType,
		model.FieldNotes:         strings.TrimSpace(r.Notes),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type ScheduleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ShiftDate    string `json:"shift_date"`
	ShiftStart   string `json:"shift_start"`
	ShiftEnd     string `json:"shift_end"`
	ShiftType    string `json:"shift_type"`
	Notes        string `json:"notes"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.Schedule) {
	r.ID = model.ID
	r.EmployeeID = model.EmployeeID
	r.EmployeeName = model.EmployeeName()
	r.ShiftDate = timezone.FormatDate(model.ShiftDate)
	r.ShiftStart = model.ShiftStart
	r.ShiftEnd = model.ShiftEnd
	r.ShiftType = model.ShiftType
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromModels(models []model.Schedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Schedules = make([]ScheduleResponse, len(models))
	for i, mod := range models {
		r.Schedules[i].FromModel(mod)
	}
}
