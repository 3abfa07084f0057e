package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// File persists the token pair as a JSON document on disk, the durable
// equivalent of the browser's local storage. The file is created with
// 0600 since it holds live credentials.
type File struct {
	path string
}

// NewFile creates a file-backed store at the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

type filePayload struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

func (f *File) Save(_ context.Context, pair domain.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	data, err := json.Marshal(filePayload{Access: pair.Access, Refresh: pair.Refresh})
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

func (f *File) Read(_ context.Context) (domain.TokenPair, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.TokenPair{}, false, nil
		}
		return domain.TokenPair{}, false, fmt.Errorf("read tokens: %w", err)
	}

	var payload filePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		// A corrupt token file is treated as absent.
		return domain.TokenPair{}, false, nil
	}

	pair := domain.TokenPair{Access: payload.Access, Refresh: payload.Refresh}
	return pair, pair.Access != "", nil
}

func (f *File) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}
