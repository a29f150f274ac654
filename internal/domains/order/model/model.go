package model

import (
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/model"
	"slices"
)

const (
	TableName     = "orders"
	ItemTableName = "order_items"
	EntityName    = "order"
	ItemEntity    = "order_item"

	FieldID            = "id"
	FieldOrderType     = "order_type"
	FieldTableNumber   = "table_number"
	FieldRoomNumber    = "room_number"
	FieldCustomerName  = "customer_name"
	FieldSeniorCitizen = "senior_citizen"
	FieldSubtotal      = "subtotal"
	FieldDiscount      = "discount"
	FieldTotal         = "total"
	FieldStatus        = "status"
	FieldItems         = "items"

	FieldOrderID    = "order_id"
	FieldMenuItemID = "menu_item_id"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldQuantity   = "quantity"
	FieldLineTotal  = "line_total"
)

const (
	TypeRestaurant  = "restaurant"
	TypeRoomService = "room_service"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusServed    = "served"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// SeniorRate is the share of the subtotal a senior citizen pays.
const SeniorRate = 0.8

var SortableFields = []string{FieldCustomerName, FieldOrderType, FieldTotal, FieldStatus, constant.FieldCreatedAt}

var transitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusServed, StatusCancelled},
	StatusServed:    {StatusCompleted},
}

// CanTransition reports whether an order may move from one status to the next.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

type Order struct {
	ID            string  `db:"id"`
	OrderType     string  `db:"order_type"`
	TableNumber   string  `db:"table_number"`
	RoomNumber    string  `db:"room_number"`
	CustomerName  string  `db:"customer_name"`
	SeniorCitizen bool    `db:"senior_citizen"`
	Subtotal      float64 `db:"subtotal"`
	Discount      float64 `db:"discount"`
	Total         float64 `db:"total"`
	Status        string  `db:"status"`
	model.Metadata
}

type OrderItem struct {
	ID         string  `db:"id"`
	OrderID    string  `db:"order_id"`
	MenuItemID string  `db:"menu_item_id"`
	Name       string  `db:"name"`
	Price      float64 `db:"price"`
	Quantity   int     `db:"quantity"`
	LineTotal  float64 `db:"line_total"`
}

// Totals prices a cart. Line totals are rounded first and the subtotal is their sum; a senior
// citizen pays SeniorRate of it.
func Totals(items []OrderItem, senior bool) (subtotal, discount, total float64) {
	for _, item := range items {
		subtotal += item.LineTotal
	}

	subtotal = shared.RoundMoney(subtotal)
	total = subtotal

	if senior {
		total = shared.RoundMoney(subtotal * SeniorRate)
		discount = shared.RoundMoney(subtotal - total)
	}

	return subtotal, discount, total
}

// Line builds an order line at the given unit price.
func Line(orderID, menuItemID, name string, price float64, quantity int) OrderItem {
	return OrderItem{
		OrderID:    orderID,
		MenuItemID: menuItemID,
		Name:       name,
		Price:      price,
		Quantity:   quantity,
		LineTotal:  shared.RoundMoney(price * float64(quantity)),
	}
}
