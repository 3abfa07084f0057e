package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// CategoriesService manages catalog categories under /restaurant/.
type CategoriesService struct {
	client *Client
}

// CategoryInput carries the writable category fields. Image uploads
// are repeated file parts; kept-image IDs are comma-joined.
type CategoryInput struct {
	Name           string
	Description    string
	UploadedImages []FileUpload
	KeptImageIDs   []string
}

func (in CategoryInput) form() *FormBuilder {
	return NewFormBuilder().
		Field("name", in.Name).
		OptionalField("description", in.Description).
		ScalarList("kept_image_ids", in.KeptImageIDs).
		FileSet("uploaded_images", in.UploadedImages)
}

// List returns all categories, whichever list shape the backend uses.
func (s *CategoriesService) List(ctx context.Context) ([]domain.Category, error) {
	data, err := s.client.get(ctx, "/restaurant/categories/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Category](data)
}

// Create adds a category.
func (s *CategoriesService) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	data, err := s.client.sendForm(ctx, http.MethodPost, "/restaurant/categories/", input.form())
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Category](data)
}

// Update replaces a category.
func (s *CategoriesService) Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	data, err := s.client.sendForm(ctx, http.MethodPut, "/restaurant/categories/"+id+"/", input.form())
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Category](data)
}

// Delete removes a category.
func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/restaurant/categories/"+id+"/")
}
