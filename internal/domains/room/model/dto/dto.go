package dto

import (
	"encoding/json"
	"hotelops/internal/domains/room/model"
	"hotelops/shared"
	"hotelops/shared/casing"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const amenityPrefix = model.FieldAmenities + "["

// RoomRequest is the multipart body of both create and update. Images are optional on update,
// where an empty list keeps the current ones.
type RoomRequest struct {
	RoomNumber  string                  `json:"room_number" validate:"required,max=10"`
	RoomType    string                  `json:"room_type"   validate:"required,oneof=single double twin suite deluxe family"`
	Price       float64                 `json:"price"       validate:"required,gt=0"`
	Capacity    int                     `json:"capacity"    validate:"required,min=1,max=20"`
	Status      string                  `json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
	Description string                  `json:"description" validate:"omitempty,max=1000"`
	Amenities   model.Amenities         `json:"amenities"`
	Images      []*multipart.FileHeader `json:"images"      validate:"max=4,dive,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
}

// Bind fills the request from a parsed multipart form. Numbers that do not parse are reported
// against their field.
func (r *RoomRequest) Bind(form *multipart.Form) error {
	values := form.Value

	r.RoomNumber = strings.TrimSpace(casing.FormValue(values, model.FieldRoomNumber))
	r.RoomType = strings.ToLower(strings.TrimSpace(casing.FormValue(values, model.FieldRoomType)))
	r.Status = strings.ToLower(strings.TrimSpace(casing.FormValue(values, model.FieldStatus)))
	r.Description = strings.TrimSpace(casing.FormValue(values, model.FieldDescription))

	if raw := casing.FormValue(values, model.FieldPrice); raw != constant.Empty {
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return failure.FieldError(model.FieldPrice, "Price must be a number")
		}

		r.Price = price
	}

	if raw := casing.FormValue(values, model.FieldCapacity); raw != constant.Empty {
		capacity, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return failure.FieldError(model.FieldCapacity, "Capacity must be a whole number")
		}

		r.Capacity = capacity
	}

	amenities, err := ParseAmenities(values)
	if err != nil {
		return err
	}

	r.Amenities = amenities

	r.Images = form.File[model.FieldImages]
	if len(r.Images) == 0 {
		r.Images = form.File[model.FieldImages+"[]"]
	}

	return nil
}

// RequireImages enforces the create rule of at least one picture.
func (r *RoomRequest) RequireImages() error {
	if len(r.Images) == 0 {
		return failure.FieldError(model.FieldImages, "At least one image is required")
	}

	return nil
}

// ParseAmenities accepts either a JSON object in the amenities field or one
// amenities[name]=bool field per amenity.
func ParseAmenities(values map[string][]string) (model.Amenities, error) {
	amenities := model.Amenities{}

	if raw := strings.TrimSpace(casing.FormValue(values, model.FieldAmenities)); raw != constant.Empty {
		if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
			return nil, failure.FieldError(model.FieldAmenities, "Amenities must be an object of true or false values")
		}
	}

	for key, vals := range values {
		name, ok := strings.CutPrefix(key, amenityPrefix)
		if !ok || len(vals) == 0 {
			continue
		}

		name = strings.TrimSuffix(name, "]")

		enabled, err := strconv.ParseBool(strings.TrimSpace(vals[0]))
		if err != nil {
			enabled = strings.EqualFold(vals[0], "on")
		}

		amenities[name] = enabled
	}

	normalized := make(model.Amenities, len(amenities))
	for name, enabled := range amenities {
		normalized[strings.ToLower(strings.TrimSpace(name))] = enabled
	}

	return normalized, nil
}

func (r *RoomRequest) status() string {
	if r.Status == constant.Empty {
		return model.StatusAvailable
	}

	return r.Status
}

func (r *RoomRequest) ToModel(user string, images []string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  r.RoomNumber,
		RoomType:    r.RoomType,
		Price:       shared.RoundMoney(r.Price),
		Capacity:    r.Capacity,
		Amenities:   r.Amenities,
		Images:      pq.StringArray(images),
		Status:      r.status(),
		Description: r.Description,
		Metadata:    gModel.NewMetadata(user),
	}
}

// ToFields returns the columns replaced by an update. images is nil when the current pictures
// are kept; status is left alone unless the form sends one.
func (r *RoomRequest) ToFields(user string, images []string) map[string]any {
	fields := map[string]any{
		model.FieldRoomNumber:    r.RoomNumber,
		model.FieldRoomType:      r.RoomType,
		model.FieldPrice:         shared.RoundMoney(r.Price),
		model.FieldCapacity:      r.Capacity,
		model.FieldAmenities:     r.Amenities,
		model.FieldDescription:   r.Description,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if r.Status != constant.Empty {
		fields[model.FieldStatus] = r.Status
	}

	if images != nil {
		fields[model.FieldImages] = pq.StringArray(images)
	}

	return fields
}

type RoomResponse struct {
	ID          string          `json:"id"`
	RoomNumber  string          `json:"room_number"`
	RoomType    string          `json:"room_type"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	Amenities   model.Amenities `json:"amenities"`
	Images      []string        `json:"images"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.Status = model.Status
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)

	if r.Images == nil {
		r.Images = []string{}
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
