// internal/app/features/cookiepolicy/handler_test.go
package cookiepolicy_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/features/cookiepolicy"
	"github.com/fizikfinito/fizikfinito/internal/app/system/cookieconsent"
	"github.com/fizikfinito/fizikfinito/internal/testutil"
)

func newTestHandler(t *testing.T) *cookiepolicy.Handler {
	t.Helper()
	testutil.InitTemplates(t)
	return cookiepolicy.NewHandler("fizikfinito.com", zap.NewNop())
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func consentCookie(t *testing.T, rec *testutil.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieconsent.CookieName {
			return c
		}
	}
	t.Fatal("expected a cookieConsent cookie")
	return nil
}

func TestServePolicy_WithoutConsentShowsBanner(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("GET", "/cookie-politikalari")
	rec := testutil.NewRecorder()
	h.ServePolicy(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Çerez Politikaları")
	rec.AssertContains(t, "cookie-banner")
}

func TestHandleAccept_WritesAllTrueAndRedirectsBack(t *testing.T) {
	h := newTestHandler(t)

	req := postForm("/cookie-consent/accept", url.Values{"back": {"/Mekanik"}})
	rec := testutil.NewRecorder()
	h.HandleAccept(rec, req)

	rec.AssertRedirect(t, "/Mekanik")

	c := consentCookie(t, rec)
	prefs, ok := cookieconsent.Parse(c.Value)
	if !ok {
		t.Fatalf("unparseable consent cookie %q", c.Value)
	}
	if !prefs.Personalization || !prefs.Marketing || !prefs.Analytics {
		t.Errorf("accept should enable everything, got %+v", prefs)
	}
	if c.Domain != "fizikfinito.com" {
		t.Errorf("cookie domain: got %q", c.Domain)
	}
}

func TestHandleDecline_WritesNecessaryOnly(t *testing.T) {
	h := newTestHandler(t)

	req := postForm("/cookie-consent/decline", url.Values{})
	rec := testutil.NewRecorder()
	h.HandleDecline(rec, req)

	rec.AssertRedirect(t, "/")

	prefs, ok := cookieconsent.Parse(consentCookie(t, rec).Value)
	if !ok {
		t.Fatal("unparseable consent cookie")
	}
	if !prefs.Necessary {
		t.Error("necessary cookies can never be declined")
	}
	if prefs.Personalization || prefs.Marketing || prefs.Analytics {
		t.Errorf("decline should disable the optional groups, got %+v", prefs)
	}
}

func TestRedirectBack_RejectsOffsiteTargets(t *testing.T) {
	h := newTestHandler(t)

	for _, back := range []string{"https://evil.example", "//evil.example", ""} {
		req := postForm("/cookie-consent/accept", url.Values{"back": {back}})
		rec := testutil.NewRecorder()
		h.HandleAccept(rec, req)
		rec.AssertRedirect(t, "/")
	}
}
