package api

import (
	"context"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// InventoryService reads warehouse and stock data.
type InventoryService struct {
	client *Client
}

// Warehouses lists storage locations.
func (s *InventoryService) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	data, err := s.client.get(ctx, "/inventory/warehouses/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Warehouse](data)
}

// Stocks lists per-warehouse stock levels.
func (s *InventoryService) Stocks(ctx context.Context) ([]domain.Stock, error) {
	data, err := s.client.get(ctx, "/inventory/stocks/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Stock](data)
}

// Sales lists completed sales.
func (s *InventoryService) Sales(ctx context.Context) ([]domain.Sale, error) {
	data, err := s.client.get(ctx, "/inventory/sales/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Sale](data)
}
