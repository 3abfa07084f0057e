package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// ProductsService manages shop products under /inventory/.
type ProductsService struct {
	client *Client
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name       string `json:"name"`
	SKU        string `json:"sku,omitempty"`
	Price      string `json:"price"`
	CategoryID string `json:"category,omitempty"`
}

// List returns all products.
func (s *ProductsService) List(ctx context.Context) ([]domain.Product, error) {
	data, err := s.client.get(ctx, "/inventory/products/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Product](data)
}

// Create adds a product.
func (s *ProductsService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	data, err := s.client.sendJSON(ctx, http.MethodPost, "/inventory/products/", input)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Product](data)
}

// Update replaces a product.
func (s *ProductsService) Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	data, err := s.client.sendJSON(ctx, http.MethodPut, "/inventory/products/"+id+"/", input)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Product](data)
}

// Delete removes a product.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/inventory/products/"+id+"/")
}
