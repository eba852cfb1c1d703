package cookieconsent_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fizikfinito/fizikfinito/internal/app/system/cookieconsent"
)

func TestParse_LegacyLiterals(t *testing.T) {
	p, ok := cookieconsent.Parse("accepted")
	if !ok {
		t.Fatal("Parse(accepted) ok = false, want true")
	}
	if !p.Analytics || !p.Marketing || !p.Personalization || !p.Necessary {
		t.Errorf("accepted → %+v, want all categories granted", p)
	}

	p, ok = cookieconsent.Parse("declined")
	if !ok {
		t.Fatal("Parse(declined) ok = false, want true")
	}
	if p.Analytics || p.Marketing || p.Personalization {
		t.Errorf("declined → %+v, want only necessary", p)
	}
	if !p.Necessary {
		t.Error("declined → Necessary = false, want true")
	}
}

func TestParse_GarbageMeansUnrecorded(t *testing.T) {
	for _, v := range []string{"", "yes", "{not json", "%zz"} {
		if _, ok := cookieconsent.Parse(v); ok {
			t.Errorf("Parse(%q) ok = true, want false", v)
		}
	}
}

func TestWriteThenFromRequest_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	want := cookieconsent.Preferences{Necessary: true, Analytics: true}
	cookieconsent.Write(rec, want, "example.com")

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieconsent.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no cookieConsent Set-Cookie written")
	}
	if cookie.MaxAge != 365*24*60*60 {
		t.Errorf("MaxAge = %d, want one year", cookie.MaxAge)
	}
	if cookie.HttpOnly {
		t.Error("cookie is HttpOnly; the banner script must be able to read it")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	got, ok := cookieconsent.FromRequest(req)
	if !ok {
		t.Fatal("FromRequest ok = false, want true")
	}
	if got != want {
		t.Errorf("preferences = %+v, want %+v", got, want)
	}
}

func TestWrite_ForcesNecessary(t *testing.T) {
	rec := httptest.NewRecorder()
	cookieconsent.Write(rec, cookieconsent.Preferences{}, "")

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	got, ok := cookieconsent.FromRequest(req)
	if !ok {
		t.Fatal("FromRequest ok = false, want true")
	}
	if !got.Necessary {
		t.Error("Necessary = false, want forced true on write")
	}
}
