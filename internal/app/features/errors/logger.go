// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure once and be done with it.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on top of the app logger.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &ErrorLogger{log: log}
}

// LogBadRequest logs a client-caused failure and renders the bad
// request page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogServerError logs a server-side failure and renders the server
// error page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogNotFound logs a lookup miss and renders the not found page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderNotFound(w, r, userMsg, backURL)
}
