package api

import (
	"context"
	"net/http"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// AuthService talks to the credential endpoints. The HTTP core already
// refreshes transparently on 401; Refresh exists for callers that want
// to renew proactively.
type AuthService struct {
	client *Client
}

// RegisterRequest is the payload for new account signup.
type RegisterRequest struct {
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Password2    string              `json:"password2"`
	BusinessType domain.BusinessType `json:"business_type,omitempty"`
}

// ObtainToken exchanges credentials for a session token pair.
func (s *AuthService) ObtainToken(ctx context.Context, email, password string) (domain.TokenPair, error) {
	payload := map[string]string{"email": email, "password": password}
	data, err := s.client.sendJSON(ctx, http.MethodPost, "/auth/token/", payload)
	if err != nil {
		return domain.TokenPair{}, err
	}

	pair, err := decodeObject[domain.TokenPair](data)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return *pair, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	payload := map[string]string{"refresh": refreshToken}
	data, err := s.client.sendJSON(ctx, http.MethodPost, "/auth/refresh/", payload)
	if err != nil {
		return "", err
	}

	result, err := decodeObject[struct {
		Access string `json:"access"`
	}](data)
	if err != nil {
		return "", err
	}
	return result.Access, nil
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	_, err := s.client.sendJSON(ctx, http.MethodPost, "/auth/register/", req)
	return err
}
