package model

import (
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestName    = "guest_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldRoomNumber   = "room_number"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldAdults       = "adults"
	FieldChildren     = "children"
	FieldNights       = "nights"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"

	ParamFrom = "from"
	ParamTo   = "to"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

var SortableFields = []string{FieldGuestName, FieldRoomNumber, FieldCheckInDate, FieldCheckOutDate, FieldTotalPrice, constant.FieldCreatedAt}

type Booking struct {
	ID           string    `db:"id"`
	GuestName    string    `db:"guest_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	RoomNumber   string    `db:"room_number"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Adults       int       `db:"adults"`
	Children     int       `db:"children"`
	Nights       int       `db:"nights"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	model.Metadata
}

// Quote prices a stay: one night per calendar day between check-in and check-out.
func Quote(checkIn, checkOut time.Time, nightlyRate float64) (nights int, total float64) {
	nights = timezone.DaysBetween(checkIn, checkOut)

	return nights, shared.RoundMoney(float64(nights) * nightlyRate)
}
