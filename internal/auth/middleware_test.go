package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/partydrop/partydrop/internal/auth"
	"github.com/partydrop/partydrop/internal/shared"
	_ "github.com/partydrop/partydrop/testing"
)

func protectedEcho(t *testing.T, sessions *shared.SessionManager) http.Handler {
	t.Helper()
	guard := auth.Middleware{Sessions: sessions, Logger: slogDiscard()}
	return guard.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := shared.ClaimsFromContext(r.Context())
		if claims == nil {
			t.Error("claims missing from context on guarded route")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestGuardAllowsValidSession(t *testing.T) {
	sessions := shared.NewSessionManager("token", "secret", time.Hour, false)
	handler := protectedEcho(t, sessions)

	issued := httptest.NewRecorder()
	if err := sessions.Issue(issued, "user-1", "host@test.local", "user"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(issued.Result().Cookies()[0])
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.Code)
	}
}

func TestGuardRejectsMissingCookie(t *testing.T) {
	sessions := shared.NewSessionManager("token", "secret", time.Hour, false)
	handler := protectedEcho(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
	if len(res.Result().Cookies()) != 0 {
		t.Fatal("guard must not mutate cookies")
	}
}

func TestGuardRejectsBadTokenWithoutClearing(t *testing.T) {
	sessions := shared.NewSessionManager("token", "secret", time.Hour, false)
	handler := protectedEcho(t, sessions)

	expired := shared.NewSessionManager("token", "secret", -time.Minute, false)
	issued := httptest.NewRecorder()
	if err := expired.Issue(issued, "user-1", "host@test.local", "user"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, cookie := range []*http.Cookie{
		issued.Result().Cookies()[0],
		{Name: "token", Value: "garbage"},
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(cookie)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if res.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", res.Code)
		}
		// The guard rejects but never clears; only the /me handler does.
		if len(res.Result().Cookies()) != 0 {
			t.Fatal("guard must not clear the cookie on a bad token")
		}
	}
}
