package domain

import "time"

// Warehouse is a storage location tracked by the inventory module.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// Stock is the quantity of one product held at one warehouse.
type Stock struct {
	ID          string `json:"id"`
	ProductID   string `json:"product"`
	WarehouseID string `json:"warehouse"`
	Quantity    int    `json:"quantity"`
}

// Sale records a completed inventory sale.
type Sale struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
