package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/transport"
)

// Client bundles the typed resource services on top of the HTTP core.
type Client struct {
	http   *transport.Client
	logger *zap.Logger

	Auth       *AuthService
	Profiles   *ProfilesService
	Categories *CategoriesService
	Menus      *MenusService
	Products   *ProductsService
	Orders     *OrdersService
	Staff      *StaffService
	Inventory  *InventoryService
}

// NewClient builds the resource services around the given HTTP core.
func NewClient(httpClient *transport.Client, logger *zap.Logger) *Client {
	c := &Client{http: httpClient, logger: logger}
	c.Auth = &AuthService{client: c}
	c.Profiles = &ProfilesService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Menus = &MenusService{client: c}
	c.Products = &ProductsService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Staff = &StaffService{client: c}
	c.Inventory = &InventoryService{client: c}
	return c
}

// get issues a GET and returns the raw response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// sendJSON marshals payload and issues the request.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, body, "application/json")
}

// sendForm encodes the multipart form and issues the request.
func (c *Client) sendForm(ctx context.Context, method, path string, form *FormBuilder) ([]byte, error) {
	contentType, body, err := form.Encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, body, contentType)
}

// delete issues a DELETE, discarding any response body.
func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "")
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	resp, err := c.http.Do(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}
