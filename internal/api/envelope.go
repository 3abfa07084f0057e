package api

import (
	"bytes"
	"encoding/json"

	"github.com/spec-kit/erp-admin-client/pkg/util"
)

// The backend emits two list shapes depending on its pagination
// settings: a bare JSON array or a {"results": [...]} envelope. The
// profile endpoint similarly serves either the bare object or a
// {"profile": {...}} wrapper. Normalization happens here, once, and
// unrecognized shapes fail loudly instead of degrading to empty data.

func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, util.NewDecodeError("list response", err)
		}
		return items, nil
	}

	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, util.NewDecodeError("list response", err)
	}
	if envelope.Results == nil {
		return nil, util.NewDecodeError("unrecognized list shape", nil)
	}

	var items []T
	if err := json.Unmarshal(envelope.Results, &items); err != nil {
		return nil, util.NewDecodeError("list results", err)
	}
	return items, nil
}

func decodeObject[T any](data []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, util.NewDecodeError("object response", err)
	}
	return &item, nil
}

// unwrapProfile strips the optional {"profile": {...}} envelope.
func unwrapProfile(data []byte) ([]byte, error) {
	var envelope struct {
		Profile json.RawMessage `json:"profile"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, util.NewDecodeError("profile response", err)
	}
	if len(envelope.Profile) > 0 && !bytes.Equal(envelope.Profile, []byte("null")) {
		return envelope.Profile, nil
	}
	return data, nil
}
