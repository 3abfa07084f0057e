package domain

// Role enumerates operator roles within a business. Values match the
// backend role keys and are always lowercase on the wire.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWaiter  Role = "waiter"
	RoleChef    Role = "chef"
	RoleCleaner Role = "cleaner"
	RoleCashier Role = "cashier"
)

// BusinessType classifies the tenant a user belongs to. Empty means the
// backend has not assigned one yet.
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeShop       BusinessType = "shop"
	BusinessTypeHospital   BusinessType = "hospital"
	BusinessTypeWarehouse  BusinessType = "warehouse"
	BusinessTypeFactory    BusinessType = "factory"
	BusinessTypeTransport  BusinessType = "transport"
)

// Vendor is the tenant business a profile is attached to.
type Vendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Profile is the caller's identity as served by /profiles/me/.
// It is replaced wholesale on every login, refresh, or profile fetch,
// never patched field by field.
type Profile struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	FullName     string       `json:"full_name"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	BusinessType BusinessType `json:"business_type"`
	Vendor       *Vendor      `json:"vendor,omitempty"`
	ProfilePhoto string       `json:"profile_photo"`
	Country      string       `json:"country"`
	City         string       `json:"city"`
	Gender       string       `json:"gender"`
	PhoneNumber  string       `json:"phone_number"`
	AboutMe      string       `json:"about_me"`
}
