package dto

import (
	"hotelops/internal/domains/inventory/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"strings"

	"github.com/google/uuid"
)

type CreateInventoryRequest struct {
	ItemName      string  `json:"item_name"       validate:"required,max=150"`
	ItemCode      string  `json:"item_code"       validate:"required,max=50"`
	Category      string  `json:"category"        validate:"required,max=100"`
	Quantity      *int    `json:"quantity"        validate:"required,gte=0"`
	MinStockLevel *int    `json:"min_stock_level" validate:"required,gte=0"`
	Price         float64 `json:"price"           validate:"required,gt=0"`
	Unit          string  `json:"unit"            validate:"omitempty,max=30"`
	SupplierID    string  `json:"supplier_id"     validate:"omitempty,uuid"`
}

func (c *CreateInventoryRequest) ToModel(user string) model.InventoryItem {
	return model.InventoryItem{
		ID:            uuid.NewString(),
		ItemName:      strings.TrimSpace(c.ItemName),
		ItemCode:      strings.ToUpper(strings.TrimSpace(c.ItemCode)),
		Category:      strings.TrimSpace(c.Category),
		Quantity:      *c.Quantity,
		MinStockLevel: *c.MinStockLevel,
		Price:         shared.RoundMoney(c.Price),
		Unit:          strings.TrimSpace(c.Unit),
		SupplierID:    optional(c.SupplierID),
		Metadata:      gModel.NewMetadata(user),
	}
}

type UpdateInventoryRequest struct {
	ItemName      string  `db:"item_name"       json:"item_name"       validate:"required,max=150"`
	ItemCode      string  `db:"item_code"       json:"item_code"       validate:"required,max=50"`
	Category      string  `db:"category"        json:"category"        validate:"required,max=100"`
	Quantity      *int    `db:"quantity"        json:"quantity"        validate:"required,gte=0"`
	MinStockLevel *int    `db:"min_stock_level" json:"min_stock_level" validate:"required,gte=0"`
	Price         float64 `db:"price"           json:"price"           validate:"required,gt=0"`
	Unit          string  `db:"unit"            json:"unit"            validate:"omitempty,max=30"`
	SupplierID    string  `json:"supplier_id"   validate:"omitempty,uuid"`
}

// ToFields returns the columns replaced by a PUT. An empty supplier clears the link.
func (u *UpdateInventoryRequest) ToFields(user string) map[string]any {
	u.ItemCode = strings.ToUpper(strings.TrimSpace(u.ItemCode))
	u.Price = shared.RoundMoney(u.Price)

	fields := shared.TransformFields(u, user)
	fields[model.FieldSupplierID] = optional(u.SupplierID)

	return fields
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

type InventoryResponse struct {
	ID            string  `json:"id"`
	ItemName      string  `json:"item_name"`
	ItemCode      string  `json:"item_code"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	SupplierID    string  `json:"supplier_id,omitempty"`
	SupplierName  string  `json:"supplier_name,omitempty"`
	LowStock      bool    `json:"low_stock"`
	gDto.Metadata
}

func (r *InventoryResponse) FromModel(model model.InventoryItem) {
	r.ID = model.ID
	r.ItemName = model.ItemName
	r.ItemCode = model.ItemCode
	r.Category = model.Category
	r.Quantity = model.Quantity
	r.MinStockLevel = model.MinStockLevel
	r.Price = model.Price
	r.Unit = model.Unit
	r.LowStock = model.LowStock()

	if model.SupplierID != nil {
		r.SupplierID = *model.SupplierID
	}

	if model.SupplierName != nil {
		r.SupplierName = *model.SupplierName
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetInventoryResponse struct {
	Items     []InventoryResponse `json:"items"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetInventoryResponse) FromModels(models []model.InventoryItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]InventoryResponse, len(models))
	for i, m := range models {
		r.Items[i].FromModel(m)
	}
}

// LowStockPayload is published when a write leaves an item at or below its minimum level.
type LowStockPayload struct {
	ItemCode      string `json:"item_code"`
	ItemName      string `json:"item_name"`
	Quantity      int    `json:"quantity"`
	MinStockLevel int    `json:"min_stock_level"`
}
