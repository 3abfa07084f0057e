package authz

import (
	"testing"

	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/internal/session"
)

func authenticated(role domain.Role) session.State {
	return session.State{
		Status:          session.StatusAuthenticated,
		IsAuthenticated: true,
		User:            &domain.Profile{ID: "u1", Role: role},
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name  string
		state session.State
		roles []domain.Role
		want  Decision
	}{
		{
			name:  "anonymous caller redirected to login",
			state: session.State{Status: session.StatusAnonymous},
			roles: nil,
			want:  DecisionRedirectLogin,
		},
		{
			name:  "anonymous caller with role requirement still redirected to login",
			state: session.State{Status: session.StatusAnonymous},
			roles: []domain.Role{domain.RoleAdmin},
			want:  DecisionRedirectLogin,
		},
		{
			name:  "authenticated with no role requirement allowed",
			state: authenticated(domain.RoleWaiter),
			roles: nil,
			want:  DecisionAllow,
		},
		{
			name:  "authenticated with matching role allowed",
			state: authenticated(domain.RoleManager),
			roles: []domain.Role{domain.RoleAdmin, domain.RoleManager},
			want:  DecisionAllow,
		},
		{
			name:  "authenticated with non-matching role redirected to unauthorized",
			state: authenticated(domain.RoleWaiter),
			roles: []domain.Role{domain.RoleAdmin, domain.RoleManager},
			want:  DecisionRedirectUnauthorized,
		},
		{
			name:  "role match is case-insensitive",
			state: authenticated(domain.Role("Admin")),
			roles: []domain.Role{domain.RoleAdmin},
			want:  DecisionAllow,
		},
		{
			name: "authenticated flag without user profile redirected to login",
			state: session.State{
				Status:          session.StatusAuthenticated,
				IsAuthenticated: true,
				User:            nil,
			},
			roles: nil,
			want:  DecisionRedirectLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.state, tt.roles); got != tt.want {
				t.Errorf("Guard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		allowed []domain.Role
		want    bool
	}{
		{"empty set admits any role", domain.RoleCleaner, nil, true},
		{"member of set", domain.RoleChef, []domain.Role{domain.RoleChef, domain.RoleWaiter}, true},
		{"not a member", domain.RoleCashier, []domain.Role{domain.RoleChef}, false},
		{"case-insensitive match", domain.Role("MANAGER"), []domain.Role{domain.RoleManager}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleAllowed(tt.role, tt.allowed); got != tt.want {
				t.Errorf("RoleAllowed(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestBusinessTypeAllowed(t *testing.T) {
	if !BusinessTypeAllowed(domain.BusinessTypeShop, nil) {
		t.Error("empty set should admit any business type")
	}
	if !BusinessTypeAllowed(domain.BusinessTypeShop, []domain.BusinessType{domain.BusinessTypeShop}) {
		t.Error("shop should match shop")
	}
	if BusinessTypeAllowed(domain.BusinessTypeShop, []domain.BusinessType{domain.BusinessTypeRestaurant}) {
		t.Error("shop should not match restaurant-only set")
	}
}
