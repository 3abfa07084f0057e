package domain

// NavigationEntry describes one link in the admin navigation tree.
// Empty Roles means any authenticated role may see it; empty
// BusinessTypes means it applies to every business type.
type NavigationEntry struct {
	Label         string
	Path          string
	Roles         []Role
	BusinessTypes []BusinessType
}

// DefaultNavigation returns the full ordered navigation tree. The order
// is part of the configuration; filtering must never reorder entries.
func DefaultNavigation() []NavigationEntry {
	return []NavigationEntry{
		{
			Label: "Dashboard",
			Path:  "/dashboard",
			Roles: []Role{RoleAdmin, RoleManager, RoleWaiter, RoleChef},
		},
		{
			Label:         "Orders",
			Path:          "/orders",
			Roles:         []Role{RoleManager, RoleWaiter, RoleAdmin},
			BusinessTypes: []BusinessType{BusinessTypeRestaurant},
		},
		{
			Label:         "Categories",
			Path:          "/categories",
			Roles:         []Role{RoleManager, RoleAdmin},
			BusinessTypes: []BusinessType{BusinessTypeRestaurant},
		},
		{
			Label:         "Menu Management",
			Path:          "/menu",
			Roles:         []Role{RoleManager, RoleAdmin},
			BusinessTypes: []BusinessType{BusinessTypeRestaurant},
		},
		{
			Label:         "Product Management",
			Path:          "/products",
			Roles:         []Role{RoleManager, RoleAdmin},
			BusinessTypes: []BusinessType{BusinessTypeShop},
		},
		{
			Label:         "Inventory",
			Path:          "/inventory",
			Roles:         []Role{RoleManager, RoleAdmin},
			BusinessTypes: []BusinessType{BusinessTypeRestaurant, BusinessTypeShop},
		},
		{
			Label: "Staff Management",
			Path:  "/staff",
			Roles: []Role{RoleAdmin, RoleManager},
		},
		{
			Label: "My Profile",
			Path:  "/profile",
		},
		{
			Label: "Admin Settings",
			Path:  "/admin/settings",
			Roles: []Role{RoleAdmin},
		},
	}
}
