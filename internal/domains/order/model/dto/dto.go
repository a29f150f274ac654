package dto

import (
	"hotelops/internal/domains/order/model"
	"hotelops/shared"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"strings"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"     validate:"required,min=1,max=100"`
}

// OrderRequest is a cart. Prices are never taken from the client; they come from the menu.
type OrderRequest struct {
	OrderType     string             `json:"order_type"     validate:"required,oneof=restaurant room_service"`
	TableNumber   string             `json:"table_number"   validate:"required_if=OrderType restaurant,max=10"`
	RoomNumber    string             `json:"room_number"    validate:"required_if=OrderType room_service,max=10"`
	CustomerName  string             `json:"customer_name"  validate:"required,max=100"`
	SeniorCitizen bool               `json:"senior_citizen"`
	Items         []OrderItemRequest `json:"items"          validate:"required,min=1,dive"`
}

// MenuItemIDs returns the distinct menu items in the cart, in cart order.
func (r *OrderRequest) MenuItemIDs() []string {
	seen := make(map[string]bool, len(r.Items))
	ids := make([]string, 0, len(r.Items))

	for _, item := range r.Items {
		if seen[item.MenuItemID] {
			continue
		}

		seen[item.MenuItemID] = true
		ids = append(ids, item.MenuItemID)
	}

	return ids
}

// ToModel prices the cart. lines must already carry menu prices.
func (r *OrderRequest) ToModel(user string, lines []model.OrderItem) (model.Order, []model.OrderItem) {
	order := model.Order{
		ID:            uuid.NewString(),
		OrderType:     r.OrderType,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		SeniorCitizen: r.SeniorCitizen,
		Status:        model.StatusPending,
		Metadata:      gModel.NewMetadata(user),
	}

	// only the number matching the order type is kept
	if r.OrderType == model.TypeRestaurant {
		order.TableNumber = strings.TrimSpace(r.TableNumber)
	} else {
		order.RoomNumber = strings.TrimSpace(r.RoomNumber)
	}

	items := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		line.ID = uuid.NewString()
		line.OrderID = order.ID
		items[i] = line
	}

	order.Subtotal, order.Discount, order.Total = model.Totals(items, r.SeniorCitizen)

	return order, items
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing served completed cancelled"`
}

type OrderItemResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderType     string              `json:"order_type"`
	TableNumber   string              `json:"table_number,omitempty"`
	RoomNumber    string              `json:"room_number,omitempty"`
	CustomerName  string              `json:"customer_name"`
	Items         []OrderItemResponse `json:"items"`
	SeniorCitizen bool                `json:"senior_citizen"`
	Subtotal      float64             `json:"subtotal"`
	Discount      float64             `json:"discount"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(order model.Order, items []model.OrderItem) {
	r.ID = order.ID
	r.OrderType = order.OrderType
	r.TableNumber = order.TableNumber
	r.RoomNumber = order.RoomNumber
	r.CustomerName = order.CustomerName
	r.SeniorCitizen = order.SeniorCitizen
	r.Subtotal = order.Subtotal
	r.Discount = order.Discount
	r.Total = order.Total
	r.Status = order.Status
	r.Metadata.FromModel(order.Metadata)

	r.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		r.Items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
		}
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// FromModels groups items under their orders.
func (r *GetOrdersResponse) FromModels(orders []model.Order, items []model.OrderItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byOrder := make(map[string][]model.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	r.Orders = make([]OrderResponse, len(orders))
	for i, order := range orders {
		r.Orders[i].FromModel(order, byOrder[order.ID])
	}
}

// StatusPayload is published with order status changes.
type StatusPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

