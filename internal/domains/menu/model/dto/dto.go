package dto

import (
	"hotelops/internal/domains/menu/model"
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
)

// MenuItemRequest is the multipart body of create and update. Without an image the current one
// is kept on update.
type MenuItemRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Category    string                `json:"category"    validate:"required,oneof=breakfast lunch dinner beverages desserts snacks"`
	Price       float64               `json:"price"       validate:"required,gt=0"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Available   *bool                 `json:"available"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
}

func (r *MenuItemRequest) Bind(form *multipart.Form) error {
	values := form.Value

	r.Name = strings.TrimSpace(casing.FormValue(values, model.FieldName))
	r.Category = strings.ToLower(strings.TrimSpace(casing.FormValue(values, model.FieldCategory)))
	r.Description = strings.TrimSpace(casing.FormValue(values, model.FieldDescription))

	if raw := casing.FormValue(values, model.FieldPrice); raw != constant.Empty {
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return failure.FieldError(model.FieldPrice, "Price must be a number")
		}

		r.Price = price
	}

	if raw := strings.TrimSpace(casing.FormValue(values, model.FieldAvailable)); raw != constant.Empty {
		available := shared.ConvertStringToBool(raw)
		if available == nil {
			return failure.FieldError(model.FieldAvailable, "Available must be true or false")
		}

		r.Available = available
	}

	if files := form.File[model.FieldImage]; len(files) > 0 {
		r.Image = files[0]
	}

	return nil
}

func (r *MenuItemRequest) available() bool {
	return r.Available == nil || *r.Available
}

func (r *MenuItemRequest) ToModel(user, image string) model.MenuItem {
	return model.MenuItem{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Category:    r.Category,
		Price:       shared.RoundMoney(r.Price),
		Description: r.Description,
		Available:   r.available(),
		Image:       image,
		Metadata:    gModel.NewMetadata(user),
	}
}

// ToFields returns the columns an update replaces; image is empty when the current one stays.
func (r *MenuItemRequest) ToFields(user, image string) map[string]any {
	fields := map[string]any{
		model.FieldName:          r.Name,
		model.FieldCategory:      r.Category,
		model.FieldPrice:         shared.RoundMoney(r.Price),
		model.FieldDescription:   r.Description,
		model.FieldAvailable:     r.available(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if image != constant.Empty {
		fields[model.FieldImage] = image
	}

	return fields
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	Image       string  `json:"image,omitempty"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Price = model.Price
	r.Description = model.Description
	r.Available = model.Available
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MenuItems = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.MenuItems[i].FromModel(mod)
	}
}
