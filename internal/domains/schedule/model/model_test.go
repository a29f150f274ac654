package model_test

import (
	"hotelops/internal/domains/schedule/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		t.Fatal(err)
	}

	return parsed
}

func TestValidShift(t *testing.T) {
	tests := []struct {
		name       string
		shiftType  string
		start, end string
		want       bool
	}{
		{name: "morning", shiftType: model.ShiftMorning, start: "06:00", end: "14:00", want: true},
		{name: "morning ending before it starts", shiftType: model.ShiftMorning, start: "14:00", end: "06:00"},
		{name: "zero length", shiftType: model.ShiftAfternoon, start: "14:00", end: "14:00"},
		{name: "night crossing midnight", shiftType: model.ShiftNight, start: "22:00", end: "06:00", want: true},
		{name: "night within the day", shiftType: model.ShiftNight, start: "18:00", end: "23:30", want: true},
		{name: "zero length night", shiftType: model.ShiftNight, start: "22:00", end: "22:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidShift(tt.shiftType, clock(t, tt.start), clock(t, tt.end)))
		})
	}
}

func TestSchedule_EmployeeName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", model.Schedule{EmployeeFirstName: "Ada", EmployeeLastName: "Lovelace"}.EmployeeName())
	assert.Equal(t, "Ada", model.Schedule{EmployeeFirstName: "Ada"}.EmployeeName())
}
