package domain

import "time"

// Category groups menu items or products within a vendor's catalog.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItem is a restaurant menu entry.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	CategoryID  string   `json:"category"`
	Available   bool     `json:"is_available"`
	Images      []string `json:"images,omitempty"`
}

// Product is a shop catalog entry.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	SKU        string   `json:"sku,omitempty"`
	Price      string   `json:"price"`
	CategoryID string   `json:"category,omitempty"`
	Images     []string `json:"images,omitempty"`
}
