package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// StaffService manages the vendor's staff roster.
type StaffService struct {
	client *Client
}

// StaffInput links a user to a role.
type StaffInput struct {
	UserID string      `json:"user"`
	Role   domain.Role `json:"role"`
}

// List returns the staff roster.
func (s *StaffService) List(ctx context.Context) ([]domain.StaffMember, error) {
	data, err := s.client.get(ctx, "/restaurant/staff/")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.StaffMember](data)
}

// Create adds a staff member.
func (s *StaffService) Create(ctx context.Context, input StaffInput) (*domain.StaffMember, error) {
	data, err := s.client.sendJSON(ctx, http.MethodPost, "/restaurant/staff/", input)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.StaffMember](data)
}

// Update changes a staff member's role.
func (s *StaffService) Update(ctx context.Context, id string, input StaffInput) (*domain.StaffMember, error) {
	data, err := s.client.sendJSON(ctx, http.MethodPut, "/restaurant/staff/"+id+"/", input)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.StaffMember](data)
}

// Delete removes a staff member.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/restaurant/staff/"+id+"/")
}
