package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldImage       = "image"
)

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategoryBeverages = "beverages"
	CategoryDesserts  = "desserts"
	CategorySnacks    = "snacks"
)

var SortableFields = []string{FieldName, FieldCategory, FieldPrice, constant.FieldCreatedAt}

type MenuItem struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	Available   bool    `db:"available"`
	Image       string  `db:"image"`
	model.Metadata
}
