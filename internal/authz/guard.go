package authz

import (
	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/internal/session"
)

// Decision is the outcome of a route guard check.
type Decision int

const (
	// DecisionAllow admits the caller.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin means the caller must authenticate first.
	DecisionRedirectLogin
	// DecisionRedirectUnauthorized means the caller is authenticated
	// but lacks a required role; the session stays intact.
	DecisionRedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return "allow"
	}
}

// Guard gates entry to a protected view. Pure: it inspects only the
// given snapshot and role set. Guards nest; an outer Guard with no
// required roles enforces authentication for a whole subtree while
// inner calls narrow access by role.
func Guard(state session.State, requiredRoles []domain.Role) Decision {
	if !state.IsAuthenticated || state.User == nil {
		return DecisionRedirectLogin
	}
	if !RoleAllowed(state.User.Role, requiredRoles) {
		return DecisionRedirectUnauthorized
	}
	return DecisionAllow
}
