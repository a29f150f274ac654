package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
)

const (
	TableName  = "inventory_items"
	EntityName = "inventory"

	FieldID            = "id"
	FieldItemName      = "item_name"
	FieldItemCode      = "item_code"
	FieldCategory      = "category"
	FieldQuantity      = "quantity"
	FieldMinStockLevel = "min_stock_level"
	FieldPrice         = "price"
	FieldUnit          = "unit"
	FieldSupplierID    = "supplier_id"
	FieldLowStock      = "low_stock"
)

// LowStockCondition selects items at or below their minimum stock level.
const LowStockCondition = TableName + "." + FieldQuantity + " <= " + TableName + "." + FieldMinStockLevel

var SortableFields = []string{FieldItemName, FieldItemCode, FieldCategory, FieldQuantity, FieldPrice, constant.FieldCreatedAt}

type InventoryItem struct {
	ID            string  `db:"id"`
	ItemName      string  `db:"item_name"`
	ItemCode      string  `db:"item_code"`
	Category      string  `db:"category"`
	Quantity      int     `db:"quantity"`
	MinStockLevel int     `db:"min_stock_level"`
	Price         float64 `db:"price"`
	Unit          string  `db:"unit"`
	SupplierID    *string `db:"supplier_id"`
	SupplierName  *string `column:"name"      db:"supplier_name" table:"suppliers"`
	model.Metadata
}

func (InventoryItem) GetJoinQuery() string {
	return "LEFT JOIN suppliers ON suppliers.id = inventory_items.supplier_id"
}

// LowStock reports whether the item has reached its reorder point.
func (i InventoryItem) LowStock() bool {
	return IsLowStock(i.Quantity, i.MinStockLevel)
}

func IsLowStock(quantity, minStockLevel int) bool {
	return quantity <= minStockLevel
}
