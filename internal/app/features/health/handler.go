// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
	"github.com/fizikfinito/fizikfinito/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	CMS *cms.Client
	Log *zap.Logger
}

// NewHandler constructs a health Handler over the content repository client.
func NewHandler(client *cms.Client, logger *zap.Logger) *Handler {
	return &Handler{
		CMS: client,
		Log: logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Content string `json:"content"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "content":"connected" }
//
// On CMS failure: 503 and
//
//	{ "status":"error", "content":"disconnected", "message":"Content repository unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Content: "connected",
	}

	if err := h.CMS.Ping(ctx); err != nil {
		h.Log.Error("health-check: CMS ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Content = "disconnected"
		resp.Message = "Content repository unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
