package mockerp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/erp-admin-client/internal/config"
	"github.com/spec-kit/erp-admin-client/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(config.MockConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		RefreshTokenTTLHours:  1,
		BcryptCost:            bcrypt.MinCost,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func doJSON(t *testing.T, s *Server, method, path, token string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, respBody
}

func loginAs(t *testing.T, s *Server, email, password string) domain.TokenPair {
	t.Helper()
	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/token/", "",
		map[string]string{"email": email, "password": password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", resp.StatusCode, body)
	}

	var pair domain.TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		t.Fatal(err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}
	return pair
}

func TestObtainTokenRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/token/", "",
		map[string]string{"email": "admin@example.com", "password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Detail != "No active account found with the given credentials" {
		t.Errorf("detail = %q", payload.Detail)
	}
}

func TestObtainTokenValidatesFields(t *testing.T) {
	s := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/token/", "",
		map[string]string{"email": "admin@example.com"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatal(err)
	}
	if len(fields["password"]) == 0 {
		t.Errorf("missing password field error, body = %s", body)
	}
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	s := newTestServer(t)
	pair := loginAs(t, s, "admin@example.com", "admin123")

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/refresh/", "",
		map[string]string{"refresh": pair.Refresh})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var result struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatal(err)
	}
	if result.Access == "" {
		t.Error("refresh returned no access token")
	}

	// The new access token must authenticate.
	resp, _ = doJSON(t, s, http.MethodGet, "/api/v1/profiles/me/", result.Access, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("me with refreshed token status = %d", resp.StatusCode)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	s := newTestServer(t)
	pair := loginAs(t, s, "admin@example.com", "admin123")

	// An access token is the wrong type for the refresh exchange.
	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/refresh/", "",
		map[string]string{"refresh": pair.Access})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if !strings.Contains(string(body), "token_not_valid") {
		t.Errorf("body = %s, want token_not_valid code", body)
	}
}

func TestMeServesProfileEnvelope(t *testing.T) {
	s := newTestServer(t)
	pair := loginAs(t, s, "manager@example.com", "manager123")

	resp, body := doJSON(t, s, http.MethodGet, "/api/v1/profiles/me/", pair.Access, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var envelope struct {
		Profile domain.Profile `json:"profile"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Profile.Email != "manager@example.com" || envelope.Profile.Role != domain.RoleManager {
		t.Errorf("profile = %+v", envelope.Profile)
	}
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	s := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodGet, "/api/v1/profiles/me/", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if !strings.Contains(string(body), "Authentication credentials were not provided.") {
		t.Errorf("body = %s", body)
	}
}

func TestRoleGating(t *testing.T) {
	s := newTestServer(t)
	waiter := loginAs(t, s, "waiter@example.com", "waiter123")
	admin := loginAs(t, s, "admin@example.com", "admin123")

	resp, _ := doJSON(t, s, http.MethodGet, "/api/v1/restaurant/staff/", waiter.Access, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("waiter staff list status = %d, want 403", resp.StatusCode)
	}

	resp, _ = doJSON(t, s, http.MethodGet, "/api/v1/restaurant/staff/", admin.Access, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin staff list status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, s, http.MethodGet, "/api/v1/profiles/all/", waiter.Access, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("waiter profiles/all status = %d, want 403", resp.StatusCode)
	}
}

func TestListEnvelopeShapes(t *testing.T) {
	s := newTestServer(t)
	pair := loginAs(t, s, "manager@example.com", "manager123")

	// Categories are paginated, products are a bare array.
	resp, body := doJSON(t, s, http.MethodGet, "/api/v1/restaurant/categories/", pair.Access, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("categories status = %d", resp.StatusCode)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) || !bytes.Contains(body, []byte(`"results"`)) {
		t.Errorf("categories body = %s, want results envelope", body)
	}

	resp, body = doJSON(t, s, http.MethodGet, "/api/v1/inventory/products/", pair.Access, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("products status = %d", resp.StatusCode)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		t.Errorf("products body = %s, want bare array", body)
	}
}

func TestStaffLifecycle(t *testing.T) {
	s := newTestServer(t)
	admin := loginAs(t, s, "admin@example.com", "admin123")

	waiterAcct, _ := s.data.findByEmail("waiter@example.com")
	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/restaurant/staff/", admin.Access,
		map[string]string{"user": waiterAcct.Profile.ID, "role": "chef"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create staff status = %d, body = %s", resp.StatusCode, body)
	}

	var member domain.StaffMember
	if err := json.Unmarshal(body, &member); err != nil {
		t.Fatal(err)
	}
	if member.Role != domain.RoleChef || member.Email != "waiter@example.com" {
		t.Errorf("member = %+v", member)
	}

	resp, body = doJSON(t, s, http.MethodPut, "/api/v1/restaurant/staff/"+member.ID+"/", admin.Access,
		map[string]string{"role": "cashier"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update staff status = %d, body = %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, s, http.MethodDelete, "/api/v1/restaurant/staff/"+member.ID+"/", admin.Access, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete staff status = %d, want 204", resp.StatusCode)
	}
}

func TestRegisterCreatesAccount(t *testing.T) {
	s := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/register/", "", map[string]string{
		"first_name":    "Nia",
		"last_name":     "New",
		"email":         "nia@example.com",
		"password":      "pw12345",
		"password2":     "pw12345",
		"business_type": "shop",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", resp.StatusCode, body)
	}

	// The fresh account can log in immediately.
	loginAs(t, s, "nia@example.com", "pw12345")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/v1/auth/register/", "", map[string]string{
		"email":    "admin@example.com",
		"password": "pw12345",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(string(body), "already exists") {
		t.Errorf("body = %s", body)
	}
}
