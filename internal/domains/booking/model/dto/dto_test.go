package dto_test

import (
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/shared/failure"
	"hotelops/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingRequest_Stay(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantField string
		wantMsg   string
	}{
		{name: "valid range", checkIn: "2026-06-01", checkOut: "2026-06-03"},
		{name: "same day", checkIn: "2026-06-01", checkOut: "2026-06-01", wantField: "check_out_date", wantMsg: dto.MsgCheckOutBeforeCheckIn},
		{name: "check-out first", checkIn: "2026-06-05", checkOut: "2026-06-01", wantField: "check_out_date", wantMsg: dto.MsgCheckOutBeforeCheckIn},
		{name: "bad check-in", checkIn: "06/01/2026", checkOut: "2026-06-03", wantField: "check_in_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.BookingRequest{CheckInDate: tt.checkIn, CheckOutDate: tt.checkOut}

			stay, err := req.Stay()

			if tt.wantField == "" {
				assert.NoError(t, err)
				assert.True(t, stay.CheckOut.After(stay.CheckIn))

				return
			}

			fields := failure.GetFields(err)
			assert.Contains(t, fields, tt.wantField)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, fields[tt.wantField])
			}
		})
	}
}

func TestBookingRequest_ToModel(t *testing.T) {
	req := dto.BookingRequest{
		GuestName: " Maria ", Email: "MARIA@example.com", Phone: "+123", RoomNumber: "305",
		CheckInDate: "2026-07-10", CheckOutDate: "2026-07-14", Adults: 2, Children: 1,
	}

	stay, err := req.Stay()
	assert.NoError(t, err)

	booking := req.ToModel("front-desk", stay, 89.5)

	assert.Equal(t, "Maria", booking.GuestName)
	assert.Equal(t, "maria@example.com", booking.Email)
	assert.Equal(t, 4, booking.Nights)
	assert.Equal(t, 358.0, booking.TotalPrice)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, 3, req.Guests())

	fields := req.ToFields("front-desk", stay, 89.5)
	assert.Equal(t, 4, fields[model.FieldNights])
	assert.Equal(t, 358.0, fields[model.FieldTotalPrice])
	assert.NotContains(t, fields, model.FieldStatus)

	req.Status = model.StatusCheckedIn
	assert.Equal(t, model.StatusCheckedIn, req.ToFields("front-desk", stay, 89.5)[model.FieldStatus])
}

func TestBookingRequest_EffectiveStatus(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		current   string
		want      string
	}{
		{name: "new booking", want: model.StatusConfirmed},
		{name: "keeps stored status", current: model.StatusCheckedIn, want: model.StatusCheckedIn},
		{name: "requested wins", requested: model.StatusCheckedOut, current: model.StatusCheckedIn, want: model.StatusCheckedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.BookingRequest{Status: tt.requested}

			assert.Equal(t, tt.want, req.EffectiveStatus(tt.current))
		})
	}
}

func TestBookingRequest_Validation(t *testing.T) {
	body := `{"guestName":"Maria","email":"not-an-email","phone":"1","roomNumber":"305","checkInDate":"2026-07-10","checkOutDate":"2026-07-14"}`

	req := dto.BookingRequest{}
	err := validator.Validate(strings.NewReader(body), &req)

	fields := failure.GetFields(err)
	assert.Equal(t, "Email must be a valid email address", fields["email"])
	assert.Equal(t, "Adults is required", fields["adults"])
}

func TestExportRequest_Range(t *testing.T) {
	req := dto.ExportRequest{From: "2026-01-10", To: "2026-01-01"}

	_, _, err := req.Range()

	assert.Contains(t, failure.GetFields(err), "to")

	req.To = "2026-01-31"
	from, to, err := req.Range()

	assert.NoError(t, err)
	assert.Equal(t, 21, int(to.Sub(from).Hours()/24))
}
