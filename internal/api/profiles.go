package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/pkg/util"
)

// ProfilesService covers the caller's own profile and, for admins, the
// full profile directory.
type ProfilesService struct {
	client *Client
}

// ProfileUpdate carries the editable profile fields. Zero values are
// omitted from the PATCH.
type ProfileUpdate struct {
	PhoneNumber string
	AboutMe     string
	Gender      string
	Country     string
	City        string
	Photo       *FileUpload
}

// Me fetches the current user's profile, tolerating both the bare
// object and the {"profile": {...}} envelope.
func (s *ProfilesService) Me(ctx context.Context) (*domain.Profile, error) {
	data, err := s.client.get(ctx, "/profiles/me/")
	if err != nil {
		return nil, err
	}

	raw, err := unwrapProfile(data)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Profile](raw)
}

// UpdateMe patches the caller's profile via multipart form-data; the
// photo rides along as a file part when present.
func (s *ProfilesService) UpdateMe(ctx context.Context, update ProfileUpdate) (*domain.Profile, error) {
	form := NewFormBuilder().
		OptionalField("phone_number", update.PhoneNumber).
		OptionalField("about_me", update.AboutMe).
		OptionalField("gender", update.Gender).
		OptionalField("country", update.Country).
		OptionalField("city", update.City)
	if update.Photo != nil {
		form.File("profile_photo", update.Photo.Filename, update.Photo.Content)
	}

	data, err := s.client.sendForm(ctx, http.MethodPatch, "/profiles/me/update/", form)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapProfile(data)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Profile](raw)
}

// All lists every profile the caller may administer. The endpoint
// serves a {"profiles": {"results": [...]}} envelope.
func (s *ProfilesService) All(ctx context.Context) ([]domain.Profile, error) {
	data, err := s.client.get(ctx, "/profiles/all/")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Profiles json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, util.NewDecodeError("profiles response", err)
	}
	if envelope.Profiles == nil {
		return nil, util.NewDecodeError("unrecognized profiles shape", nil)
	}
	return decodeList[domain.Profile](envelope.Profiles)
}
