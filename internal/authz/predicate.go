package authz

import (
	"strings"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// RoleAllowed reports whether role belongs to the allowed set. An
// empty set admits any role. Matching is case-insensitive because the
// backend has historically served both "Admin" and "admin".
func RoleAllowed(role domain.Role, allowed []domain.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, candidate := range allowed {
		if strings.EqualFold(string(candidate), string(role)) {
			return true
		}
	}
	return false
}

// BusinessTypeAllowed reports whether the business type belongs to the
// allowed set. An empty set admits every business type.
func BusinessTypeAllowed(businessType domain.BusinessType, allowed []domain.BusinessType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, candidate := range allowed {
		if candidate == businessType {
			return true
		}
	}
	return false
}
