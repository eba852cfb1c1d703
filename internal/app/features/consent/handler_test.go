// internal/app/features/consent/handler_test.go
package consent_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/features/consent"
	errorsfeature "github.com/fizikfinito/fizikfinito/internal/app/features/errors"
	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
	userstore "github.com/fizikfinito/fizikfinito/internal/app/store/users"
	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/testutil"
)

func newTestHandler(t *testing.T) (*consent.Handler, *testutil.FakeCMS) {
	t.Helper()
	testutil.InitTemplates(t)
	logger := zap.NewNop()

	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	fake := testutil.NewFakeCMS(t)
	users := userstore.New(cms.New(fake.URL(), "test-token", logger))
	return consent.NewHandler(users, sessionMgr, errorsfeature.NewErrorLogger(logger), logger), fake
}

func postForm(target string, values url.Values, user testutil.TestUser) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, user)
}

func TestServeForm_FreshUserSeesForm(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/kvkk", testutil.FreshUser())
	rec := testutil.NewRecorder()
	h.ServeForm(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Aydınlatma")
	rec.AssertContains(t, `name="consent"`)
}

func TestServeForm_AlreadyConsentedRedirects(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/kvkk", testutil.ConsentedUser())
	rec := testutil.NewRecorder()
	h.ServeForm(rec, req)

	rec.AssertRedirect(t, "/profile")
}

func TestServeForm_AnonymousRedirectsToLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/kvkk")
	rec := testutil.NewRecorder()
	h.ServeForm(rec, req)

	rec.AssertRedirect(t, "/login")
}

func TestHandleAccept_MissingCheckboxRerenders400(t *testing.T) {
	h, fake := newTestHandler(t)
	fake.Seed("kullanicilar", map[string]any{"id": "102", "email": "mehmet@test.com", "termsAccepted": false})

	req := postForm("/kvkk", url.Values{}, testutil.FreshUser())
	rec := testutil.NewRecorder()
	h.HandleAccept(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "kabul etmeniz gerekir")

	for _, item := range fake.Items("kullanicilar") {
		if item["termsAccepted"] == true {
			t.Error("consent must not be written when the checkbox is missing")
		}
	}
}

func TestHandleAccept_CheckboxPersistsAndRedirects(t *testing.T) {
	h, fake := newTestHandler(t)
	fake.Seed("kullanicilar", map[string]any{"id": "102", "email": "mehmet@test.com", "termsAccepted": false})

	req := postForm("/kvkk", url.Values{"consent": {"on"}}, testutil.FreshUser())
	rec := testutil.NewRecorder()
	h.HandleAccept(rec, req)

	rec.AssertRedirect(t, "/profile")

	var accepted bool
	for _, item := range fake.Items("kullanicilar") {
		if item["termsAccepted"] == true {
			accepted = true
		}
	}
	if !accepted {
		t.Error("expected termsAccepted to be patched to true")
	}
}

func TestHandleAccept_CMSFailureRendersServerError(t *testing.T) {
	h, fake := newTestHandler(t)
	fake.FailWrites = true

	req := postForm("/kvkk", url.Values{"consent": {"on"}}, testutil.FreshUser())
	rec := testutil.NewRecorder()
	h.HandleAccept(rec, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
	if !strings.Contains(rec.Body.String(), "kaydedilemedi") {
		t.Error("expected the consent failure message")
	}
}
