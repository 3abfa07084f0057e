package api

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/internal/tokenstore"
	"github.com/spec-kit/erp-admin-client/internal/transport"
	"github.com/spec-kit/erp-admin-client/pkg/util"
)

func newClientForTest(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	httpClient := transport.NewClient(server.URL, tokenstore.NewMemory(), logger, transport.Options{})
	return NewClient(httpClient, logger)
}

func TestObtainToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"email":"a@b.c"`) {
			t.Errorf("request body = %s", body)
		}
		w.Write([]byte(`{"access": "tok-a", "refresh": "tok-r"}`))
	})

	client := newClientForTest(t, mux)
	pair, err := client.Auth.ObtainToken(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("ObtainToken() error = %v", err)
	}
	if pair.Access != "tok-a" || pair.Refresh != "tok-r" {
		t.Errorf("pair = %+v", pair)
	}
}

func TestProfilesMeBothShapes(t *testing.T) {
	bodies := map[string]string{
		"wrapped": `{"profile": {"id": "u1", "email": "a@b.c", "role": "admin"}}`,
		"bare":    `{"id": "u1", "email": "a@b.c", "role": "admin"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/profiles/me/", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			client := newClientForTest(t, mux)
			profile, err := client.Profiles.Me(context.Background())
			if err != nil {
				t.Fatalf("Me() error = %v", err)
			}
			if profile.ID != "u1" || profile.Role != domain.RoleAdmin {
				t.Errorf("profile = %+v", profile)
			}
		})
	}
}

func TestProfilesAllNestedEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profiles/all/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"profiles": {"count": 1, "results": [{"id": "u1", "email": "a@b.c"}]}}`))
	})

	client := newClientForTest(t, mux)
	profiles, err := client.Profiles.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].ID != "u1" {
		t.Errorf("profiles = %+v", profiles)
	}
}

func TestProfilesAllUnrecognizedShapeFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/profiles/all/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "u1"}]`))
	})

	client := newClientForTest(t, mux)
	_, err := client.Profiles.All(context.Background())
	if !util.HasCode(err, util.CodeDecodeFailed) {
		t.Fatalf("All() error = %v, want DECODE_FAILED", err)
	}
}

func TestCategoriesCreateSendsMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/restaurant/categories/", func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			t.Fatalf("content type: %v", err)
		}
		form, err := multipart.NewReader(r.Body, params["boundary"]).ReadForm(1 << 20)
		if err != nil {
			t.Fatalf("read form: %v", err)
		}
		defer form.RemoveAll()

		if got := form.Value["name"]; len(got) != 1 || got[0] != "Starters" {
			t.Errorf("name = %v", got)
		}
		if got := form.Value["kept_image_ids"]; len(got) != 1 || got[0] != "7,9" {
			t.Errorf("kept_image_ids = %v", got)
		}
		if got := form.File["uploaded_images"]; len(got) != 2 {
			t.Errorf("uploaded_images parts = %d, want 2", len(got))
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "c9", "name": "Starters"}`))
	})

	client := newClientForTest(t, mux)
	category, err := client.Categories.Create(context.Background(), CategoryInput{
		Name:         "Starters",
		KeptImageIDs: []string{"7", "9"},
		UploadedImages: []FileUpload{
			{Filename: "a.png", Content: strings.NewReader("a")},
			{Filename: "b.png", Content: strings.NewReader("b")},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if category.ID != "c9" {
		t.Errorf("category = %+v", category)
	}
}

func TestOrdersSetStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/restaurant/orders/o1/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"status":"accepted"`) {
			t.Errorf("body = %s", body)
		}
		w.Write([]byte(`{"id": "o1", "order_number": "1001", "status": "accepted"}`))
	})

	client := newClientForTest(t, mux)
	order, err := client.Orders.SetStatus(context.Background(), "o1", domain.OrderStatusAccepted)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if order.Status != domain.OrderStatusAccepted {
		t.Errorf("order = %+v", order)
	}
}

func TestCategoriesListValidationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/restaurant/categories/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"name": ["This field is required."]}`))
	})

	client := newClientForTest(t, mux)
	_, err := client.Categories.Create(context.Background(), CategoryInput{})
	apiErr := util.ToAPIError(err)
	if apiErr == nil || apiErr.Code != util.CodeValidationFailed {
		t.Fatalf("Create() error = %v, want VALIDATION_FAILED", err)
	}
	if got := apiErr.Fields["name"]; len(got) != 1 {
		t.Errorf("field errors = %v", apiErr.Fields)
	}
}
