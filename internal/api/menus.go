package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// MenusService manages restaurant menu items.
type MenusService struct {
	client *Client
}

// MenuItemInput carries the writable menu item fields.
type MenuItemInput struct {
	Name           string
	Description    string
	Price          string
	CategoryID     string
	Available      bool
	UploadedImages []FileUpload
	KeptImageIDs   []string
}

func (in MenuItemInput) form() *FormBuilder {
	return NewFormBuilder().
		Field("name", in.Name).
		OptionalField("description", in.Description).
		Field("price", in.Price).
		OptionalField("category", in.CategoryID).
		Field("is_available", strconv.FormatBool(in.Available)).
		ScalarList("kept_image_ids", in.KeptImageIDs).
		FileSet("uploaded_images", in.UploadedImages)
}

// List returns all menu items.
func (s *MenusService) List(ctx context.Context) ([]domain.MenuItem, error) {
	data, err := s.client.get(ctx, "/restaurant/menus/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.MenuItem](data)
}

// Create adds a menu item.
func (s *MenusService) Create(ctx context.Context, input MenuItemInput) (*domain.MenuItem, error) {
	data, err := s.client.sendForm(ctx, http.MethodPost, "/restaurant/menus/", input.form())
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.MenuItem](data)
}

// Update patches a menu item.
func (s *MenusService) Update(ctx context.Context, id string, input MenuItemInput) (*domain.MenuItem, error) {
	data, err := s.client.sendForm(ctx, http.MethodPatch, "/restaurant/menus/"+id+"/", input.form())
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.MenuItem](data)
}

// Delete removes a menu item.
func (s *MenusService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/restaurant/menus/"+id+"/")
}
