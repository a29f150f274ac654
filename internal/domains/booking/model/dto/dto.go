package dto

import (
	"fmt"
	"hotelops/internal/domains/booking/model"
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

const MsgCheckOutBeforeCheckIn = "Check-out date must be after check-in date"

// BookingRequest is the body of both create and full update.
type BookingRequest struct {
	GuestName    string `json:"guest_name"     validate:"required,max=100"`
	Email        string `json:"email"          validate:"required,email,max=100"`
	Phone        string `json:"phone"          validate:"required,max=20"`
	RoomNumber   string `json:"room_number"    validate:"required,max=10"`
	CheckInDate  string `json:"check_in_date"  validate:"required,dateformat"`
	CheckOutDate string `json:"check_out_date" validate:"required,dateformat"`
	Adults       int    `json:"adults"         validate:"required,min=1"`
	Children     int    `json:"children"       validate:"gte=0"`
	Status       string `json:"status"         validate:"omitempty,oneof=confirmed checked_in checked_out cancelled"`
}

// Stay is a validated date range; check-out is strictly after check-in.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (r *BookingRequest) Stay() (Stay, error) {
	checkIn, err := timezone.ParseDate(r.CheckInDate)
	if err != nil {
		return Stay{}, failure.FieldError(model.FieldCheckInDate, "Check in date must be a date in YYYY-MM-DD format")
	}

	checkOut, err := timezone.ParseDate(r.CheckOutDate)
	if err != nil {
		return Stay{}, failure.FieldError(model.FieldCheckOutDate, "Check out date must be a date in YYYY-MM-DD format")
	}

	if !checkOut.After(checkIn) {
		return Stay{}, failure.FieldError(model.FieldCheckOutDate, MsgCheckOutBeforeCheckIn)
	}

	return Stay{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func (r *BookingRequest) Guests() int {
	return r.Adults + r.Children
}

// EffectiveStatus is the status the booking ends up with: the requested one, else the stored
// one, else confirmed for a new booking.
func (r *BookingRequest) EffectiveStatus(current string) string {
	switch {
	case r.Status != constant.Empty:
		return r.Status
	case current != constant.Empty:
		return current
	default:
		return model.StatusConfirmed
	}
}

func (r *BookingRequest) ToModel(user string, stay Stay, nightlyRate float64) model.Booking {
	nights, total := model.Quote(stay.CheckIn, stay.CheckOut, nightlyRate)

	return model.Booking{
		ID:           uuid.NewString(),
		GuestName:    strings.TrimSpace(r.GuestName),
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:        strings.TrimSpace(r.Phone),
		RoomNumber:   strings.TrimSpace(r.RoomNumber),
		CheckInDate:  stay.CheckIn,
		CheckOutDate: stay.CheckOut,
		Adults:       r.Adults,
		Children:     r.Children,
		Nights:       nights,
		TotalPrice:   total,
		Status:       r.EffectiveStatus(constant.Empty),
		Metadata:     gModel.NewMetadata(user),
	}
}

// ToFields returns every column a PUT replaces, with nights and price recomputed. Status is
// only written when the request carries one.
func (r *BookingRequest) ToFields(user string, stay Stay, nightlyRate float64) map[string]any {
	booking := r.ToModel(user, stay, nightlyRate)

	fields := map[string]any{
		model.FieldGuestName:     booking.GuestName,
		model.FieldEmail:         booking.Email,
		model.FieldPhone:         booking.Phone,
		model.FieldRoomNumber:    booking.RoomNumber,
		model.FieldCheckInDate:   booking.CheckInDate,
		model.FieldCheckOutDate:  booking.CheckOutDate,
		model.FieldAdults:        booking.Adults,
		model.FieldChildren:      booking.Children,
		model.FieldNights:        booking.Nights,
		model.FieldTotalPrice:    booking.TotalPrice,
		constant.FieldModifiedAt: booking.ModifiedAt,
		constant.FieldModifiedBy: user,
	}

	if r.Status != constant.Empty {
		fields[model.FieldStatus] = r.Status
	}

	return fields
}

type BookingResponse struct {
	ID           string  `json:"id"`
	GuestName    string  `json:"guest_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Email = model.Email
	r.Phone = model.Phone
	r.RoomNumber = model.RoomNumber
	r.CheckInDate = timezone.FormatDate(model.CheckInDate)
	r.CheckOutDate = timezone.FormatDate(model.CheckOutDate)
	r.Adults = model.Adults
	r.Children = model.Children
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// ExportRequest selects bookings checking in between From and To, both inclusive.
type ExportRequest struct {
	From string `json:"from" validate:"required,dateformat"`
	To   string `json:"to"   validate:"required,dateformat"`
}

func (r *ExportRequest) Range() (from, to time.Time, err error) {
	from, err = timezone.ParseDate(r.From)
	if err != nil {
		return from, to, failure.FieldError(model.ParamFrom, "From must be a date in YYYY-MM-DD format")
	}

	to, err = timezone.ParseDate(r.To)
	if err != nil {
		return from, to, failure.FieldError(model.ParamTo, "To must be a date in YYYY-MM-DD format")
	}

	if to.Before(from) {
		return from, to, failure.FieldError(model.ParamTo, "To must not be before from")
	}

	return from, to, nil
}

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

func NewExportFile(from, to time.Time, content []byte) ExportFile {
	return ExportFile{
		Name:        fmt.Sprintf("bookings_%s_to_%s.xlsx", timezone.FormatDate(from), timezone.FormatDate(to)),
		ContentType: ContentTypeXLSX,
		Content:     content,
	}
}
