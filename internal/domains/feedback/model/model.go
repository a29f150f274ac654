package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
)

const (
	TableName  = "feedback"
	EntityName = "feedback"

	FieldID         = "id"
	FieldGuestName  = "guest_name"
	FieldEmail      = "email"
	FieldRoomNumber = "room_number"
	FieldRating     = "rating"
	FieldCategory   = "category"
	FieldComments   = "comments"
)

const (
	CategoryService     = "service"
	CategoryCleanliness = "cleanliness"
	CategoryFood        = "food"
	CategoryAmenities   = "amenities"
	CategoryOther       = "other"

	MinRating = 1
	MaxRating = 5
)

var SortableFields = []string{FieldRating, FieldGuestName, constant.FieldCreatedAt}

type Feedback struct {
	ID         string `db:"id"`
	GuestName  string `db:"guest_name"`
	Email      string `db:"email"`
	RoomNumber string `db:"room_number"`
	Rating     int    `db:"rating"`
	Category   string `db:"category"`
	Comments   string `db:"comments"`
	model.Metadata
}

// RatingCount is one row of the per-rating breakdown.
type RatingCount struct {
	Rating int `db:"rating"`
	Total  int `db:"total"`
}
