// internal/app/features/login/handler_test.go
package login_test

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/features/login"
	"github.com/fizikfinito/fizikfinito/internal/testutil"
)

func newTestHandler(t *testing.T) *login.Handler {
	t.Helper()
	testutil.InitTemplates(t)
	return login.NewHandler(zap.NewNop())
}

func TestServeLogin_Anonymous(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("GET", "/login")
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Google ile Giriş Yap")
}

func TestServeLogin_ErrorCodeRendersMessage(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("GET", "/login?error=missing_email")
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "e-posta adresi bulunamadı")
}

func TestServeLogin_UnknownErrorCodeFallsBack(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("GET", "/login?error=what_is_this")
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Bir şeyler ters gitti")
}

func TestServeLogin_SignedInRedirectsToProfile(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/login", testutil.ConsentedUser())
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)

	rec.AssertRedirect(t, "/profile")
}
