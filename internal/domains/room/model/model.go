package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"hotelops/shared/constant"
	"hotelops/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
	FieldImages      = "images"
	FieldStatus      = "status"
	FieldDescription = "description"

	ParamMinCapacity = "min_capacity"
	MaxImages        = 4
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

var SortableFields = []string{FieldRoomNumber, FieldRoomType, FieldPrice, FieldCapacity, constant.FieldCreatedAt}

var errAmenitiesType = errors.New("amenities: unsupported column type")

// Amenities is stored as a JSONB object of amenity name to availability.
type Amenities map[string]bool

func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("amenities: %w", err)
	}

	return data, nil
}

func (a *Amenities) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*a = Amenities{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return errAmenitiesType
	}

	decoded := Amenities{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("amenities: %w", err)
	}

	*a = decoded

	return nil
}

type Room struct {
	ID          string         `db:"id"`
	RoomNumber  string         `db:"room_number"`
	RoomType    string         `db:"room_type"`
	Price       float64        `db:"price"`
	Capacity    int            `db:"capacity"`
	Amenities   Amenities      `db:"amenities"`
	Images      pq.StringArray `db:"images"`
	Status      string         `db:"status"`
	Description string         `db:"description"`
	model.Metadata
}
