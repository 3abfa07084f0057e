package authz

import (
	"testing"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

func TestVisibleEntries(t *testing.T) {
	entries := []domain.NavigationEntry{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Menu Management", Path: "/menus",
			Roles:         []domain.Role{domain.RoleManager, domain.RoleAdmin},
			BusinessTypes: []domain.BusinessType{domain.BusinessTypeRestaurant}},
		{Label: "Product Management", Path: "/products",
			Roles:         []domain.Role{domain.RoleManager, domain.RoleAdmin},
			BusinessTypes: []domain.BusinessType{domain.BusinessTypeShop}},
		{Label: "Admin Settings", Path: "/admin",
			Roles: []domain.Role{domain.RoleAdmin}},
	}

	t.Run("nil user sees nothing", func(t *testing.T) {
		if got := VisibleEntries(nil, entries); got != nil {
			t.Errorf("VisibleEntries(nil) = %v, want nil", got)
		}
	})

	t.Run("shop manager filtered by role and business type", func(t *testing.T) {
		user := &domain.Profile{Role: domain.RoleManager, BusinessType: domain.BusinessTypeShop}
		got := VisibleEntries(user, entries)

		want := []string{"Dashboard", "Product Management"}
		if len(got) != len(want) {
			t.Fatalf("got %d entries, want %d", len(got), len(want))
		}
		for i, label := range want {
			if got[i].Label != label {
				t.Errorf("entry[%d] = %q, want %q", i, got[i].Label, label)
			}
		}
	})

	t.Run("restaurant admin sees role-gated entries in order", func(t *testing.T) {
		user := &domain.Profile{Role: domain.RoleAdmin, BusinessType: domain.BusinessTypeRestaurant}
		got := VisibleEntries(user, entries)

		want := []string{"Dashboard", "Menu Management", "Admin Settings"}
		if len(got) != len(want) {
			t.Fatalf("got %d entries, want %d", len(got), len(want))
		}
		for i, label := range want {
			if got[i].Label != label {
				t.Errorf("entry[%d] = %q, want %q", i, got[i].Label, label)
			}
		}
	})

	t.Run("waiter sees only unrestricted entries", func(t *testing.T) {
		user := &domain.Profile{Role: domain.RoleWaiter, BusinessType: domain.BusinessTypeRestaurant}
		got := VisibleEntries(user, entries)
		if len(got) != 1 || got[0].Label != "Dashboard" {
			t.Errorf("got %v, want only Dashboard", got)
		}
	})
}

func TestDefaultNavigationGuardAgreement(t *testing.T) {
	// Every visible entry must also pass the route guard for the same
	// user, so navigation never links to a view the guard would reject.
	user := &domain.Profile{Role: domain.RoleManager, BusinessType: domain.BusinessTypeRestaurant}
	for _, entry := range VisibleEntries(user, domain.DefaultNavigation()) {
		if !RoleAllowed(user.Role, entry.Roles) {
			t.Errorf("entry %q visible but role %q not allowed", entry.Label, user.Role)
		}
	}
}
