package mockerp

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/authz"
	"github.com/spec-kit/erp-admin-client/internal/config"
	"github.com/spec-kit/erp-admin-client/internal/domain"
)

const principalKey = "mock_principal"

// Server is a self-contained stand-in for the ERP backend, good enough
// to develop and demo the client offline. It speaks the same DRF
// dialect as production: SimpleJWT token endpoints, {"detail": ...}
// errors, and both list envelope shapes.
type Server struct {
	app    *fiber.App
	tokens *TokenManager
	data   *dataStore
	logger *zap.Logger
}

// New builds the mock server with seeded users and catalog data.
func New(cfg config.MockConfig, logger *zap.Logger) (*Server, error) {
	data, err := newDataStore(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	tokens := NewTokenManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTokenTTLHours)*time.Hour,
	)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	s := &Server{app: app, tokens: tokens, data: data, logger: logger}
	s.registerRoutes()
	return s, nil
}

// App exposes the fiber app for in-process testing via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("mock ERP backend listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api/v1")

	api.Post("/auth/token/", s.handleObtainToken)
	api.Post("/auth/refresh/", s.handleRefresh)
	api.Post("/auth/register/", s.handleRegister)

	protected := api.Group("", s.requireAuth)
	protected.Get("/profiles/me/", s.handleMe)
	protected.Patch("/profiles/me/update/", s.handleUpdateMe)
	protected.Get("/profiles/all/", s.requireRole(domain.RoleAdmin), s.handleAllProfiles)

	protected.Get("/restaurant/categories/", s.handleListCategories)
	protected.Post("/restaurant/categories/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleCreateCategory)
	protected.Put("/restaurant/categories/:id/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleUpdateCategory)
	protected.Delete("/restaurant/categories/:id/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleDeleteCategory)

	protected.Get("/restaurant/menus/", s.handleListMenus)
	protected.Post("/restaurant/menus/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleCreateMenu)
	protected.Patch("/restaurant/menus/:id/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleUpdateMenu)
	protected.Delete("/restaurant/menus/:id/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleDeleteMenu)

	protected.Get("/inventory/products/", s.handleListProducts)
	protected.Post("/inventory/products/", s.requireRole(domain.RoleAdmin, domain.RoleManager), s.handleCreateProduct)

	protected.Get("/restaurant/orders/", s.handleListOrders)
	protected.Patch("/restaurant/orders/:id/", s.handleSetOrderStatus)

	staffOnly := s.requireRole(domain.RoleAdmin, domain.RoleManager)
	protected.Get("/restaurant/staff/", staffOnly, s.handleListStaff)
	protected.Post("/restaurant/staff/", staffOnly, s.handleCreateStaff)
	protected.Put("/restaurant/staff/:id/", staffOnly, s.handleUpdateStaff)
	protected.Delete("/restaurant/staff/:id/", staffOnly, s.handleDeleteStaff)
	protected.Get("/inventory/warehouses/", s.handleListWarehouses)
	protected.Get("/inventory/stocks/", s.handleListStocks)
	protected.Get("/inventory/sales/", s.handleListSales)
}

// requireAuth validates bearer tokens and loads the caller's account.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return detailError(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return detailError(c, http.StatusUnauthorized, "Invalid authorization header.")
	}

	claims, err := s.tokens.Parse(parts[1], tokenTypeAccess)
	if err != nil {
		return detailError(c, http.StatusUnauthorized, "Given token not valid for any token type")
	}

	acct, ok := s.data.findByID(claims.Subject)
	if !ok {
		return detailError(c, http.StatusUnauthorized, "User not found")
	}

	c.Locals(principalKey, acct)
	return c.Next()
}

// requireRole narrows access for role-gated endpoints, reusing the
// client's own authorization predicate.
func (s *Server) requireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct, ok := principalFrom(c)
		if !ok {
			return detailError(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
		}
		if !authz.RoleAllowed(acct.Profile.Role, allowed) {
			return detailError(c, http.StatusForbidden, "You do not have permission to perform this action.")
		}
		return c.Next()
	}
}

func principalFrom(c *fiber.Ctx) (*account, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	acct, ok := val.(*account)
	return acct, ok
}

func detailError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}

func (s *Server) handleObtainToken(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detailError(c, http.StatusBadRequest, "Invalid payload.")
	}

	fieldErrors := fiber.Map{}
	if req.Email == "" {
		fieldErrors["email"] = []string{"This field is required."}
	}
	if req.Password == "" {
		fieldErrors["password"] = []string{"This field is required."}
	}
	if len(fieldErrors) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fieldErrors)
	}

	acct, ok := s.data.findByEmail(req.Email)
	if !ok || !s.data.checkPassword(acct, req.Password) {
		return detailError(c, http.StatusUnauthorized, "No active account found with the given credentials")
	}

	pair, err := s.tokens.IssuePair(acct.Profile.ID, acct.Profile.Email, acct.Profile.Role)
	if err != nil {
		return detailError(c, http.StatusInternalServerError, "Could not issue tokens.")
	}

	s.logger.Info("issued token pair", zap.String("email", req.Email))
	return c.JSON(pair)
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.BodyParser(&req); err != nil || req.Refresh == "" {
		return detailError(c, http.StatusBadRequest, "Refresh token required.")
	}

	claims, err := s.tokens.Parse(req.Refresh, tokenTypeRefresh)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Token is invalid or expired",
			"code":   "token_not_valid",
		})
	}

	access, err := s.tokens.IssueAccess(claims.Subject, claims.Email, claims.Role)
	if err != nil {
		return detailError(c, http.StatusInternalServerError, "Could not issue token.")
	}
	return c.JSON(fiber.Map{"access": access})
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req struct {
		FirstName    string              `json:"first_name"`
		LastName     string              `json:"last_name"`
		Email        string              `json:"email"`
		Password     string              `json:"password"`
		Password2    string              `json:"password2"`
		BusinessType domain.BusinessType `json:"business_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detailError(c, http.StatusBadRequest, "Invalid payload.")
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"email":    []string{"This field is required."},
			"password": []string{"This field is required."},
		})
	}
	if req.Password2 != "" && req.Password != req.Password2 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"password2": []string{"Passwords do not match."},
		})
	}
	if _, exists := s.data.findByEmail(req.Email); exists {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"email": []string{"A user with this email already exists."},
		})
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return detailError(c, http.StatusInternalServerError, "Could not create account.")
	}

	profile := domain.Profile{
		ID:           uuid.NewString(),
		Username:     req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		FullName:     strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:        req.Email,
		Role:         domain.RoleManager,
		BusinessType: req.BusinessType,
	}

	s.data.mu.Lock()
	s.data.accounts[req.Email] = &account{Profile: profile, PasswordHash: hash}
	s.data.mu.Unlock()

	return c.Status(http.StatusCreated).JSON(profile)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	acct, _ := principalFrom(c)
	return c.JSON(fiber.Map{"profile": acct.Profile})
}

func (s *Server) handleUpdateMe(c *fiber.Ctx) error {
	acct, _ := principalFrom(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if v := c.FormValue("phone_number"); v != "" {
		acct.Profile.PhoneNumber = v
	}
	if v := c.FormValue("about_me"); v != "" {
		acct.Profile.AboutMe = v
	}
	if v := c.FormValue("gender"); v != "" {
		acct.Profile.Gender = v
	}
	if v := c.FormValue("country"); v != "" {
		acct.Profile.Country = v
	}
	if v := c.FormValue("city"); v != "" {
		acct.Profile.City = v
	}
	if file, err := c.FormFile("profile_photo"); err == nil && file != nil {
		acct.Profile.ProfilePhoto = "/media/profiles/" + file.Filename
	}

	return c.JSON(acct.Profile)
}

func (s *Server) handleAllProfiles(c *fiber.Ctx) error {
	s.data.mu.Lock()
	profiles := make([]domain.Profile, 0, len(s.data.accounts))
	for _, acct := range s.data.accounts {
		profiles = append(profiles, acct.Profile)
	}
	s.data.mu.Unlock()

	return c.JSON(fiber.Map{
		"profiles": fiber.Map{"results": profiles, "count": len(profiles)},
	})
}

// Categories are served paginated; products as a bare array. The
// client's envelope normalization is exercised against both shapes.
func (s *Server) handleListCategories(c *fiber.Ctx) error {
	s.data.mu.Lock()
	categories := append([]domain.Category{}, s.data.categories...)
	s.data.mu.Unlock()
	return c.JSON(fiber.Map{"results": categories, "count": len(categories)})
}

func (s *Server) handleCreateCategory(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"name": []string{"This field is required."},
		})
	}

	category := domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: c.FormValue("description"),
		CreatedAt:   time.Now(),
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["uploaded_images"] {
			category.Images = append(category.Images, "/media/categories/"+file.Filename)
		}
	}

	s.data.mu.Lock()
	s.data.categories = append(s.data.categories, category)
	s.data.mu.Unlock()

	return c.Status(http.StatusCreated).JSON(category)
}

func (s *Server) handleUpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.categories {
		if s.data.categories[i].ID == id {
			if v := c.FormValue("name"); v != "" {
				s.data.categories[i].Name = v
			}
			if v := c.FormValue("description"); v != "" {
				s.data.categories[i].Description = v
			}
			s.data.categories[i].UpdatedAt = time.Now()
			return c.JSON(s.data.categories[i])
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.categories {
		if s.data.categories[i].ID == id {
			s.data.categories = append(s.data.categories[:i], s.data.categories[i+1:]...)
			return c.SendStatus(http.StatusNoContent)
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleListMenus(c *fiber.Ctx) error {
	s.data.mu.Lock()
	menus := append([]domain.MenuItem{}, s.data.menus...)
	s.data.mu.Unlock()
	return c.JSON(fiber.Map{"results": menus, "count": len(menus)})
}

func (s *Server) handleCreateMenu(c *fiber.Ctx) error {
	name := c.FormValue("name")
	price := c.FormValue("price")
	if name == "" || price == "" {
		fieldErrors := fiber.Map{}
		if name == "" {
			fieldErrors["name"] = []string{"This field is required."}
		}
		if price == "" {
			fieldErrors["price"] = []string{"This field is required."}
		}
		return c.Status(http.StatusBadRequest).JSON(fieldErrors)
	}

	item := domain.MenuItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		CategoryID:  c.FormValue("category"),
		Available:   c.FormValue("is_available") == "true",
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["uploaded_images"] {
			item.Images = append(item.Images, "/media/menus/"+file.Filename)
		}
	}

	s.data.mu.Lock()
	s.data.menus = append(s.data.menus, item)
	s.data.mu.Unlock()

	return c.Status(http.StatusCreated).JSON(item)
}

func (s *Server) handleUpdateMenu(c *fiber.Ctx) error {
	id := c.Params("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.menus {
		if s.data.menus[i].ID == id {
			if v := c.FormValue("name"); v != "" {
				s.data.menus[i].Name = v
			}
			if v := c.FormValue("description"); v != "" {
				s.data.menus[i].Description = v
			}
			if v := c.FormValue("price"); v != "" {
				s.data.menus[i].Price = v
			}
			if v := c.FormValue("is_available"); v != "" {
				s.data.menus[i].Available = v == "true"
			}
			return c.JSON(s.data.menus[i])
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteMenu(c *fiber.Ctx) error {
	id := c.Params("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.menus {
		if s.data.menus[i].ID == id {
			s.data.menus = append(s.data.menus[:i], s.data.menus[i+1:]...)
			return c.SendStatus(http.StatusNoContent)
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleListProducts(c *fiber.Ctx) error {
	s.data.mu.Lock()
	products := append([]domain.Product{}, s.data.products...)
	s.data.mu.Unlock()
	return c.JSON(products)
}

func (s *Server) handleCreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name"`
		SKU        string `json:"sku"`
		Price      string `json:"price"`
		CategoryID string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detailError(c, http.StatusBadRequest, "Invalid payload.")
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"name": []string{"This field is required."},
		})
	}

	product := domain.Product{
		ID:         uuid.NewString(),
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}

	s.data.mu.Lock()
	s.data.products = append(s.data.products, product)
	s.data.mu.Unlock()

	return c.Status(http.StatusCreated).JSON(product)
}

func (s *Server) handleListOrders(c *fiber.Ctx) error {
	s.data.mu.Lock()
	orders := append([]domain.Order{}, s.data.orders...)
	s.data.mu.Unlock()
	return c.JSON(fiber.Map{"results": orders, "count": len(orders)})
}

func (s *Server) handleSetOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return detailError(c, http.StatusBadRequest, "Status required.")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.orders {
		if s.data.orders[i].ID == id {
			s.data.orders[i].Status = req.Status
			return c.JSON(s.data.orders[i])
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleListStaff(c *fiber.Ctx) error {
	s.data.mu.Lock()
	staff := append([]domain.StaffMember{}, s.data.staff...)
	s.data.mu.Unlock()
	return c.JSON(fiber.Map{"results": staff, "count": len(staff)})
}

func (s *Server) handleCreateStaff(c *fiber.Ctx) error {
	var req struct {
		UserID string      `json:"user"`
		Role   domain.Role `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detailError(c, http.StatusBadRequest, "Invalid payload.")
	}
	if req.UserID == "" || req.Role == "" {
		fieldErrors := fiber.Map{}
		if req.UserID == "" {
			fieldErrors["user"] = []string{"This field is required."}
		}
		if req.Role == "" {
			fieldErrors["role"] = []string{"This field is required."}
		}
		return c.Status(http.StatusBadRequest).JSON(fieldErrors)
	}

	member := domain.StaffMember{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Role:      req.Role,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if acct, ok := s.data.findByID(req.UserID); ok {
		member.FullName = acct.Profile.FullName
		member.Email = acct.Profile.Email
	}

	s.data.mu.Lock()
	s.data.staff = append(s.data.staff, member)
	s.data.mu.Unlock()

	return c.Status(http.StatusCreated).JSON(member)
}

func (s *Server) handleUpdateStaff(c *fiber.Ctx) error {
	id := c.Params("id")
	var req struct {
		Role domain.Role `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil || req.Role == "" {
		return detailError(c, http.StatusBadRequest, "Role required.")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.staff {
		if s.data.staff[i].ID == id {
			s.data.staff[i].Role = req.Role
			return c.JSON(s.data.staff[i])
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteStaff(c *fiber.Ctx) error {
	id := c.Params("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.staff {
		if s.data.staff[i].ID == id {
			s.data.staff = append(s.data.staff[:i], s.data.staff[i+1:]...)
			return c.SendStatus(http.StatusNoContent)
		}
	}
	return detailError(c, http.StatusNotFound, "Not found.")
}

func (s *Server) handleListWarehouses(c *fiber.Ctx) error {
	s.data.mu.Lock()
	warehouses := append([]domain.Warehouse{}, s.data.warehouses...)
	s.data.mu.Unlock()
	return c.JSON(warehouses)
}

func (s *Server) handleListStocks(c *fiber.Ctx) error {
	s.data.mu.Lock()
	stocks := append([]domain.Stock{}, s.data.stocks...)
	s.data.mu.Unlock()
	return c.JSON(fiber.Map{"results": stocks, "count": len(stocks)})
}

func (s *Server) handleListSales(c *fiber.Ctx) error {
	s.data.mu.Lock()
	sales := append([]domain.Sale{}, s.data.sales...)
	s.data.mu.Unlock()
	return c.JSON(sales)
}
