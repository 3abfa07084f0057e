package authz

import "github.com/spec-kit/erp-admin-client/internal/domain"

// VisibleEntries filters the static navigation table down to what the
// user may see, using the same predicates as the route guard so the
// two can never diverge. Configuration order is preserved; a nil user
// sees nothing.
func VisibleEntries(user *domain.Profile, entries []domain.NavigationEntry) []domain.NavigationEntry {
	if user == nil {
		return nil
	}

	var visible []domain.NavigationEntry
	for _, entry := range entries {
		if RoleAllowed(user.Role, entry.Roles) && BusinessTypeAllowed(user.BusinessType, entry.BusinessTypes) {
			visible = append(visible, entry)
		}
	}
	return visible
}
