// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/system/auth"
	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
)

// Handler serves the login page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// errorMessages maps the ?error= codes the OAuth flow redirects with to
// user-facing Turkish text.
var errorMessages = map[string]string{
	"google_denied":         "Google girişi iptal edildi.",
	"invalid_state":         "Giriş isteği doğrulanamadı. Lütfen tekrar deneyin.",
	"invalid_code":          "Giriş isteği doğrulanamadı. Lütfen tekrar deneyin.",
	"token_exchange":        "Google ile bağlantı kurulamadı. Lütfen tekrar deneyin.",
	"user_info":             "Google hesap bilgileri alınamadı. Lütfen tekrar deneyin.",
	"missing_email":         "Google hesabınızda e-posta adresi bulunamadı.",
	"upsert_failed":         "Hesabınız oluşturulamadı. Lütfen daha sonra tekrar deneyin.",
	"google_not_configured": "Google girişi şu anda kullanılamıyor.",
	"internal":              "Bir şeyler ters gitti. Lütfen tekrar deneyin.",
}

type pageData struct {
	viewdata.BaseVM
	ErrorMessage string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login – login page with the Google button                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, signedIn := auth.CurrentUser(r); signedIn {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Giriş Yap", "/"),
	}
	if code := r.URL.Query().Get("error"); code != "" {
		msg, ok := errorMessages[code]
		if !ok {
			msg = errorMessages["internal"]
		}
		data.ErrorMessage = msg
	}

	templates.Render(w, r, "login", data)
}
