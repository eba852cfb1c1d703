// internal/app/features/logout/handler_test.go
package logout_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/features/logout"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/testutil"
)

func newTestHandler(t *testing.T) *logout.Handler {
	t.Helper()
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return logout.NewHandler(sessionMgr, logger)
}

func TestServeLogout_RedirectsHome(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/logout", testutil.ConsentedUser())
	rec := testutil.NewRecorder()
	h.ServeLogout(rec, req)

	rec.AssertRedirect(t, "/")
}

func TestServeLogout_ExpiresSessionCookie(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/logout", testutil.ConsentedUser())
	rec := testutil.NewRecorder()
	h.ServeLogout(rec, req)

	var expired bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("expected the session cookie to be expired")
	}
}

func TestServeLogout_AnonymousStillRedirects(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("POST", "/logout")
	rec := testutil.NewRecorder()
	h.ServeLogout(rec, req)

	rec.AssertRedirect(t, "/")
}
