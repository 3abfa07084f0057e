package domain

import "time"

// OrderStatus enumerates the lifecycle of a customer order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRejected  OrderStatus = "rejected"
)

// OrderItem is one line of an order.
type OrderItem struct {
	MenuItemID string `json:"menu_item"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
}

// Order is a restaurant order as returned by /restaurant/orders/.
type Order struct {
	ID        string      `json:"id"`
	Number    string      `json:"order_number,omitempty"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items,omitempty"`
	Total     string      `json:"total"`
	TableNo   string      `json:"table,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
