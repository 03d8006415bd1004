package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	called := false
	protected := RequireAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Errorf("expected redirect to %s, got %q", LoginPath, loc)
	}
	if called {
		t.Error("protected handler must not run for anonymous requests")
	}
}

func TestRequireAdmin_RejectsUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	protected := RequireAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for an unknown token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "bogus"})
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
}

func TestRequireAdmin_PassesSessionThroughContext(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	token, err := store.Create("admin-1", "admin")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	var got Session
	var ok bool
	protected := RequireAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = AdminFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: token})
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !ok {
		t.Fatal("expected session on the request context")
	}
	if got.AdminID != "admin-1" || got.Name != "admin" {
		t.Errorf("unexpected session: %+v", got)
	}
}
