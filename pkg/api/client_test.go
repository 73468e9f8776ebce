package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"spicytrolly/internal/models"
	"spicytrolly/internal/session"
)

// writeData runs inside handler goroutines, so it must not call
// Fatalf; Errorf still fails the test without stopping the wrong
// goroutine.
func writeData(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"success": true, "data": v}); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.MemoryStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewMemoryStore()
	client := New(Config{BaseURL: srv.URL, Session: store})
	return client, store, srv
}

func TestLoginStoresTokenAndAttachesHeader(t *testing.T) {
	var menuAuthHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "admin@x.com" || creds.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeData(t, w, models.AuthResponse{
			Token: "T1",
			Admin: models.Admin{ID: "a1", Email: creds.Email, Name: "Admin", Role: models.RoleAdmin},
		})
	})
	mux.HandleFunc("GET /menu", func(w http.ResponseWriter, r *http.Request) {
		menuAuthHeader = r.Header.Get("Authorization")
		writeData(t, w, []models.MenuItem{})
	})

	client, store, _ := newTestClient(t, mux)
	ctx := context.Background()

	resp, err := client.Auth.Login(ctx, models.Credentials{Email: "admin@x.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token != "T1" {
		t.Errorf("token = %q, want T1", resp.Token)
	}

	sess, _ := store.Get()
	if sess.Token != "T1" || sess.Admin == nil || sess.Admin.Name != "Admin" {
		t.Errorf("stored session = %+v, want token T1 with admin identity", sess)
	}

	if _, err := client.Menu.List(ctx); err != nil {
		t.Fatalf("menu list: %v", err)
	}
	if menuAuthHeader != "Bearer T1" {
		t.Errorf("Authorization = %q, want Bearer T1", menuAuthHeader)
	}
}

func TestAnonymousRequestHasNoAuthHeader(t *testing.T) {
	var header string
	var present bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu", func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		writeData(t, w, []models.MenuItem{})
	})

	client, _, _ := newTestClient(t, mux)
	if _, err := client.Menu.List(context.Background()); err != nil {
		t.Fatalf("menu list: %v", err)
	}
	if present || header != "" {
		t.Errorf("anonymous request carried Authorization %q", header)
	}
}

func TestUnauthorizedClearsSessionAndFiresCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	store.Set(session.Session{Token: "stale", Admin: &models.Admin{ID: "a1"}})

	var fired bool
	client := New(Config{
		BaseURL:        srv.URL,
		Session:        store,
		OnUnauthorized: func() { fired = true },
	})

	_, err := client.Orders.List(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !fired {
		t.Error("OnUnauthorized did not fire")
	}
	sess, _ := store.Get()
	if sess.Authenticated() {
		t.Error("session not cleared after 401")
	}
}

func TestMissingDataIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	_, err := client.Menu.List(context.Background())

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
}

func TestDeleteRequiresEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /menu/m1", func(w http.ResponseWriter, r *http.Request) {
		// A misrouted 200, e.g. a proxy login page.
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>OK</html>"))
	})
	mux.HandleFunc("DELETE /menu/m2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "deleted"})
	})

	client, _, _ := newTestClient(t, mux)
	ctx := context.Background()

	err := client.Menu.Delete(ctx, "m1")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("non-envelope 200 on delete: err = %v, want DecodeError", err)
	}

	if err := client.Menu.Delete(ctx, "m2"); err != nil {
		t.Fatalf("enveloped delete: %v", err)
	}
}

func TestServerErrorMessagePropagated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "menu is on fire"})
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	_, err := client.Menu.List(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.Status)
	}
	if apiErr.Message != "menu is on fire" {
		t.Errorf("message = %q, want server-supplied message", apiErr.Message)
	}
}

func TestServerErrorWithoutEnvelopeGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	_, err := client.Menu.List(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != "request failed with status 502" {
		t.Errorf("message = %q, want generic transport message", apiErr.Message)
	}
}

func TestSuccessFalseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "validation failed upstream"})
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL})
	_, err := client.Menu.List(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != "validation failed upstream" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	var logoutCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		logoutCalls++
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "logged out"})
	})

	client, store, _ := newTestClient(t, mux)
	ctx := context.Background()

	// Logging out while anonymous is a no-op: no request, no error.
	if err := client.Auth.Logout(ctx); err != nil {
		t.Fatalf("logout while anonymous: %v", err)
	}
	if logoutCalls != 0 {
		t.Errorf("anonymous logout issued %d requests, want 0", logoutCalls)
	}

	store.Set(session.Session{Token: "T1"})
	if err := client.Auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if logoutCalls != 1 {
		t.Errorf("logout issued %d requests, want 1", logoutCalls)
	}
	sess, _ := store.Get()
	if sess.Authenticated() {
		t.Error("session survived logout")
	}

	// And again, now anonymous once more.
	if err := client.Auth.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if logoutCalls != 1 {
		t.Errorf("second logout issued a request")
	}
}

func TestLogoutClearsSessionEvenWhenTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	store.Set(session.Session{Token: "rejected"})
	client := New(Config{BaseURL: srv.URL, Session: store})

	if err := client.Auth.Logout(context.Background()); err != nil {
		t.Fatalf("logout with rejected token: %v", err)
	}
	sess, _ := store.Get()
	if sess.Authenticated() {
		t.Error("session survived logout")
	}
}

func TestVerifyReturnsAdmin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer T1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeData(t, w, models.Admin{ID: "a1", Email: "admin@x.com", Name: "Admin", Role: models.RoleManager})
	})

	client, store, _ := newTestClient(t, mux)
	store.Set(session.Session{Token: "T1"})

	admin, err := client.Auth.Verify(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if admin.Role != models.RoleManager {
		t.Errorf("role = %s, want manager", admin.Role)
	}
}

func TestDecimalFieldsDecodeFromNumbers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu/m1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"m1","name":"Paneer Tikka","price":250.5,"category":"Starters","available":true}}`))
	})

	client, _, _ := newTestClient(t, mux)
	item, err := client.Menu.Get(context.Background(), "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !item.Price.Equal(decimal.NewFromFloat(250.5)) {
		t.Errorf("price = %s, want 250.5", item.Price)
	}
}
