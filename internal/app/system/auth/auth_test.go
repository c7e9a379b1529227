package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/pinguard"
	"go.uber.org/zap"
)

const testKey = "test-session-key-for-testing-only"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	m, err := auth.NewSessionManager(testKey, "agendahub-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return m
}

// roundTrip replays the Set-Cookie headers from rec onto a fresh request,
// simulating the browser's next interaction.
func roundTrip(rec *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "n", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestAdminFlagRoundTrip(t *testing.T) {
	m := newManager(t)

	req := httptest.NewRequest("POST", "/admin", nil)
	rec := httptest.NewRecorder()
	if err := m.SignInAdmin(rec, req); err != nil {
		t.Fatalf("SignInAdmin failed: %v", err)
	}

	next := roundTrip(rec, "GET", "/admin")
	if !m.IsAdmin(next) {
		t.Error("admin flag should survive the cookie round trip")
	}

	rec2 := httptest.NewRecorder()
	if err := m.SignOutAdmin(rec2, next); err != nil {
		t.Fatalf("SignOutAdmin failed: %v", err)
	}
	if m.IsAdmin(roundTrip(rec2, "GET", "/admin")) {
		t.Error("admin flag should be gone after sign out")
	}
}

func TestIsAdmin_FreshRequest(t *testing.T) {
	m := newManager(t)
	if m.IsAdmin(httptest.NewRequest("GET", "/admin", nil)) {
		t.Error("fresh request must not be admin")
	}
}

func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	m := newManager(t)
	called := false
	h := m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/close", nil))

	if called {
		t.Error("inner handler must not run for anonymous requests")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect: got %q, want /admin", loc)
	}
}

func TestGrantRoundTrip(t *testing.T) {
	m := newManager(t)
	grant := pinguard.Grant{ID: "g-1", RowIndex: 4, IssuedAt: time.Now().UTC().Truncate(time.Second)}

	req := httptest.NewRequest("POST", "/items/4/authorize", nil)
	rec := httptest.NewRecorder()
	if err := m.SaveGrant(rec, req, grant); err != nil {
		t.Fatalf("SaveGrant failed: %v", err)
	}

	next := roundTrip(rec, "POST", "/items/4/update")
	got, ok := m.Grant(next)
	if !ok {
		t.Fatal("grant should be present after round trip")
	}
	if got.ID != grant.ID || got.RowIndex != grant.RowIndex {
		t.Errorf("grant mismatch: got %+v, want %+v", got, grant)
	}

	rec2 := httptest.NewRecorder()
	if err := m.ClearGrant(rec2, next); err != nil {
		t.Fatalf("ClearGrant failed: %v", err)
	}
	if _, ok := m.Grant(roundTrip(rec2, "GET", "/")); ok {
		t.Error("grant should be gone after ClearGrant")
	}
}

func TestGrant_AbsentOnFreshRequest(t *testing.T) {
	m := newManager(t)
	if _, ok := m.Grant(httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("fresh request must carry no grant")
	}
}

func TestSaveGrant_ReplacesPrevious(t *testing.T) {
	m := newManager(t)

	req := httptest.NewRequest("POST", "/items/2/authorize", nil)
	rec := httptest.NewRecorder()
	if err := m.SaveGrant(rec, req, pinguard.Grant{ID: "old", RowIndex: 2, IssuedAt: time.Now()}); err != nil {
		t.Fatalf("SaveGrant failed: %v", err)
	}

	second := roundTrip(rec, "POST", "/items/5/authorize")
	rec2 := httptest.NewRecorder()
	if err := m.SaveGrant(rec2, second, pinguard.Grant{ID: "new", RowIndex: 5, IssuedAt: time.Now()}); err != nil {
		t.Fatalf("second SaveGrant failed: %v", err)
	}

	got, ok := m.Grant(roundTrip(rec2, "POST", "/items/5/update"))
	if !ok || got.ID != "new" || got.RowIndex != 5 {
		t.Errorf("latest grant should win: got %+v ok=%v", got, ok)
	}
}
