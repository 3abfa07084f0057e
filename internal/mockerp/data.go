package mockerp

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// account is a seeded or registered user with credentials.
type account struct {
	Profile      domain.Profile
	PasswordHash string
}

// dataStore holds the mock backend's in-memory state.
type dataStore struct {
	mu         sync.Mutex
	accounts   map[string]*account // keyed by email
	categories []domain.Category
	menus      []domain.MenuItem
	products   []domain.Product
	orders     []domain.Order
	staff      []domain.StaffMember
	warehouses []domain.Warehouse
	stocks     []domain.Stock
	sales      []domain.Sale
}

func newDataStore(bcryptCost int) (*dataStore, error) {
	ds := &dataStore{accounts: make(map[string]*account)}

	seedUsers := []struct {
		email        string
		password     string
		first, last  string
		role         domain.Role
		businessType domain.BusinessType
	}{
		{"admin@example.com", "admin123", "Ada", "Admin", domain.RoleAdmin, domain.BusinessTypeRestaurant},
		{"manager@example.com", "manager123", "Mona", "Manager", domain.RoleManager, domain.BusinessTypeRestaurant},
		{"waiter@example.com", "waiter123", "Walt", "Waiter", domain.RoleWaiter, domain.BusinessTypeRestaurant},
		{"shop@example.com", "shop123", "Sam", "Shopkeeper", domain.RoleManager, domain.BusinessTypeShop},
	}

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcryptCost)
		if err != nil {
			return nil, err
		}
		ds.accounts[u.email] = &account{
			Profile: domain.Profile{
				ID:           uuid.NewString(),
				Username:     u.email,
				FirstName:    u.first,
				LastName:     u.last,
				FullName:     u.first + " " + u.last,
				Email:        u.email,
				Role:         u.role,
				BusinessType: u.businessType,
			},
			PasswordHash: string(hash),
		}
	}

	ds.categories = []domain.Category{
		{ID: uuid.NewString(), Name: "Starters", Description: "Small plates"},
		{ID: uuid.NewString(), Name: "Mains", Description: "Main courses"},
	}
	ds.menus = []domain.MenuItem{
		{ID: uuid.NewString(), Name: "Bruschetta", Price: "6.00", CategoryID: ds.categories[0].ID, Available: true},
		{ID: uuid.NewString(), Name: "Risotto", Price: "14.00", CategoryID: ds.categories[1].ID, Available: true},
	}
	ds.products = []domain.Product{
		{ID: uuid.NewString(), Name: "Espresso Beans", SKU: "SKU-001", Price: "12.50"},
	}
	ds.orders = []domain.Order{
		{ID: uuid.NewString(), Number: "1001", Status: domain.OrderStatusPending, Total: "42.00"},
	}
	ds.warehouses = []domain.Warehouse{
		{ID: uuid.NewString(), Name: "Central", Location: "Basement"},
	}
	if len(ds.products) > 0 && len(ds.warehouses) > 0 {
		ds.stocks = []domain.Stock{
			{ID: uuid.NewString(), ProductID: ds.products[0].ID, WarehouseID: ds.warehouses[0].ID, Quantity: 40},
		}
	}

	return ds, nil
}

func (ds *dataStore) findByEmail(email string) (*account, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	acct, ok := ds.accounts[email]
	return acct, ok
}

func (ds *dataStore) findByID(id string) (*account, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, acct := range ds.accounts {
		if acct.Profile.ID == id {
			return acct, true
		}
	}
	return nil, false
}

func (ds *dataStore) checkPassword(acct *account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) == nil
}
