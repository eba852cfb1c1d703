// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/app/system/cookieconsent"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is used until Init runs.
const DefaultSiteName = "Fizikfinito"

// siteName and analyticsID are set once by Init from bootstrap.
var (
	siteName    = DefaultSiteName
	analyticsID string
)

// Init sets the site name and the analytics measurement id rendered into
// the layout when the visitor has allowed analytics cookies. Call this once
// at startup from bootstrap.
func Init(name, measurementID string) {
	if name != "" {
		siteName = name
	}
	analyticsID = measurementID
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn      bool
	UserName        string
	UserEmail       string
	AvatarURL       string
	ConsentAccepted bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string // Token for form submission

	// Cookie banner / analytics gate
	ShowCookieBanner bool
	AnalyticsAllowed bool
	AnalyticsID      string
}

// NewBaseVM creates a fully populated BaseVM for a page.
// This is the preferred way to create a BaseVM for embedding in view models.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    siteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if user, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = user.FullName()
		vm.UserEmail = user.Email
		vm.AvatarURL = user.AvatarURL
		vm.ConsentAccepted = user.ConsentAccepted
	}

	prefs, recorded := cookieconsent.FromRequest(r)
	vm.ShowCookieBanner = !recorded
	vm.AnalyticsAllowed = recorded && prefs.Analytics
	if vm.AnalyticsAllowed {
		vm.AnalyticsID = analyticsID
	}

	return vm
}
