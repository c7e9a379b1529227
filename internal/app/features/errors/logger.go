// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger implements the boundary pattern every handler follows:
// log the failure with its cause and show the user a readable page.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger over the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs a malformed-input failure and renders userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.String("path", r.URL.Path), zap.Error(err))
	w.WriteHeader(http.StatusBadRequest)
	RenderError(w, r, userMsg, backURL)
}

// LogStoreError logs a sheet store failure and renders userMsg. The store
// error text is included on the page verbatim so operators can see the
// transport detail.
func (e *ErrorLogger) LogStoreError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.String("path", r.URL.Path), zap.Error(err))
	w.WriteHeader(http.StatusBadGateway)
	if err != nil {
		userMsg = userMsg + " (" + err.Error() + ")"
	}
	RenderError(w, r, userMsg, backURL)
}
