package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// OrdersService reads and updates restaurant orders.
type OrdersService struct {
	client *Client
}

// List returns all orders visible to the caller.
func (s *OrdersService) List(ctx context.Context) ([]domain.Order, error) {
	data, err := s.client.get(ctx, "/restaurant/orders/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Order](data)
}

// Get fetches one order.
func (s *OrdersService) Get(ctx context.Context, id string) (*domain.Order, error) {
	data, err := s.client.get(ctx, "/restaurant/orders/"+id+"/")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Order](data)
}

// SetStatus advances an order through its lifecycle.
func (s *OrdersService) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	payload := map[string]domain.OrderStatus{"status": status}
	data, err := s.client.sendJSON(ctx, http.MethodPatch, "/restaurant/orders/"+id+"/", payload)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Order](data)
}
